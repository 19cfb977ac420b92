package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusdrop-api/models"
	"campusdrop-api/services"
)

type AchievementController struct {
	db      *gorm.DB
	rewards *services.RewardService
}

func NewAchievementController(db *gorm.DB) *AchievementController {
	return &AchievementController{
		db:      db,
		rewards: services.NewRewardService(db),
	}
}

func (ac *AchievementController) GetAchievements(c *gin.Context) {
	var achievements []models.Achievement
	if err := ac.db.Order("name").Find(&achievements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	c.JSON(http.StatusOK, achievements)
}

func (ac *AchievementController) GetUserAchievements(c *gin.Context) {
	userID := c.GetString("user_id")

	var earned []models.UserAchievement
	if err := ac.db.Preload("Achievement").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&earned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	c.JSON(http.StatusOK, earned)
}

type GrantAchievementRequest struct {
	AchievementID string `json:"achievement_id" binding:"required"`
}

// GrantAchievement awards an achievement to the acting user. Granting one the
// user already holds is a no-op and pays nothing.
func (ac *AchievementController) GrantAchievement(c *gin.Context) {
	userID := c.GetString("user_id")

	var req GrantAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var achievement models.Achievement
	if err := ac.db.First(&achievement, "id = ?", req.AchievementID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Achievement not found"})
		return
	}

	var existing models.UserAchievement
	if err := ac.db.Where("user_id = ? AND achievement_id = ?", userID, achievement.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Achievement already earned"})
		return
	}

	err := ac.db.Transaction(func(tx *gorm.DB) error {
		grant := models.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
		}
		if err := tx.Create(&grant).Error; err != nil {
			return err
		}
		return ac.rewards.Award(tx, userID, achievement.XPReward, achievement.PointsReward, "")
	})
	if err != nil {
		// The unique pair index turns a double-grant race into a create
		// failure; both callers see the achievement as earned.
		c.JSON(http.StatusOK, gin.H{"message": "Achievement already earned"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Achievement earned",
		"achievement":    achievement,
		"xp_awarded":     achievement.XPReward,
		"points_awarded": achievement.PointsReward,
	})
}

type CreateAchievementRequest struct {
	Name         string `json:"name"`
	Challenge    string `json:"challenge" binding:"required,max=255"`
	XPReward     uint   `json:"xp_reward"`
	PointsReward uint   `json:"points_reward"`
}

// CreateAchievement defines a new achievement. Staff only.
func (ac *AchievementController) CreateAchievement(c *gin.Context) {
	var req CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	achievement := models.Achievement{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Challenge:    req.Challenge,
		XPReward:     req.XPReward,
		PointsReward: req.PointsReward,
	}

	if err := ac.db.Create(&achievement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create achievement"})
		return
	}

	c.JSON(http.StatusCreated, achievement)
}
