package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusdrop-api/models"
	"campusdrop-api/services"
)

// Rewards for refilling a bottle at a campus fountain.
const (
	bottleXPReward     = 15
	bottlePointsReward = 10
)

type FountainController struct {
	db      *gorm.DB
	rewards *services.RewardService
}

func NewFountainController(db *gorm.DB) *FountainController {
	return &FountainController{
		db:      db,
		rewards: services.NewRewardService(db),
	}
}

func (fc *FountainController) GetFountains(c *gin.Context) {
	var fountains []models.Fountain
	query := fc.db.Preload("Building")
	if buildingID := c.Query("building_id"); buildingID != "" {
		query = query.Where("building_id = ?", buildingID)
	}
	if err := query.Find(&fountains).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fountains"})
		return
	}

	c.JSON(http.StatusOK, fountains)
}

type CreateFountainRequest struct {
	Location   string `json:"location" binding:"required,max=255"`
	BuildingID string `json:"building_id" binding:"required"`
}

// CreateFountain registers a fountain inside a building. Staff only.
func (fc *FountainController) CreateFountain(c *gin.Context) {
	var req CreateFountainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var building models.Building
	if err := fc.db.First(&building, "id = ?", req.BuildingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
		return
	}

	fountain := models.Fountain{
		ID:         uuid.New().String(),
		Location:   req.Location,
		BuildingID: building.ID,
	}

	if err := fc.db.Create(&fountain).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fountain"})
		return
	}

	c.JSON(http.StatusCreated, fountain)
}

type FillBottleRequest struct {
	FountainID string `json:"fountain_id" binding:"required"`
}

// FillBottle records a bottle refill: bumps the user's bottle counter, pays
// the rewards, counts the droplets toward the building's leaderboard and
// stores the fill. One fill per building per user per day.
func (fc *FountainController) FillBottle(c *gin.Context) {
	userID := c.GetString("user_id")

	var req FillBottleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var fountain models.Fountain
	if err := fc.db.First(&fountain, "id = ?", req.FountainID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fountain not found"})
		return
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayCount int64
	fc.db.Model(&models.FilledBottle{}).
		Where("user_id = ? AND building_id = ? AND day >= ?", userID, fountain.BuildingID, dayStart).
		Count(&todayCount)
	if todayCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Bottle already filled here today"})
		return
	}

	err := fc.db.Transaction(func(tx *gorm.DB) error {
		fill := models.FilledBottle{
			UserID:     userID,
			BuildingID: fountain.BuildingID,
			Day:        now,
		}
		if err := tx.Create(&fill).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("bottles", gorm.Expr("bottles + 1")).Error; err != nil {
			return err
		}

		return fc.rewards.Award(tx, userID, bottleXPReward, bottlePointsReward, fountain.BuildingID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record bottle fill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Bottle filled",
		"xp_awarded":     bottleXPReward,
		"points_awarded": bottlePointsReward,
	})
}
