package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusdrop-api/models"
)

type BuildingController struct {
	db *gorm.DB
}

func NewBuildingController(db *gorm.DB) *BuildingController {
	return &BuildingController{db: db}
}

func (bc *BuildingController) GetBuildings(c *gin.Context) {
	var buildings []models.Building
	if err := bc.db.Order("name").Find(&buildings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch buildings"})
		return
	}

	c.JSON(http.StatusOK, buildings)
}

func (bc *BuildingController) GetBuilding(c *gin.Context) {
	buildingID := c.Param("id")

	var building models.Building
	if err := bc.db.Preload("Floors").Preload("Fountains").
		First(&building, "id = ?", buildingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
		return
	}

	c.JSON(http.StatusOK, building)
}

type CreateBuildingRequest struct {
	Name      string  `json:"name" binding:"required,max=30"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Radius    float64 `json:"radius" binding:"required,gt=0"`
	ImageURL  string  `json:"image_url"`
}

func (bc *BuildingController) CreateBuilding(c *gin.Context) {
	var req CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	building := models.Building{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Radius:    req.Radius,
		ImageURL:  req.ImageURL,
	}

	if err := bc.db.Create(&building).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create building"})
		return
	}

	c.JSON(http.StatusCreated, building)
}

type AddFloorRequest struct {
	FloorNumber int    `json:"floor_number" binding:"required"`
	ImageURL    string `json:"image_url"`
}

func (bc *BuildingController) AddFloor(c *gin.Context) {
	buildingID := c.Param("id")

	var building models.Building
	if err := bc.db.First(&building, "id = ?", buildingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
		return
	}

	var req AddFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	floor := models.BuildingFloor{
		BuildingID:  building.ID,
		FloorNumber: req.FloorNumber,
		ImageURL:    req.ImageURL,
	}

	if err := bc.db.Create(&floor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add floor"})
		return
	}

	c.JSON(http.StatusCreated, floor)
}

// GetLeaderboard returns the top droplet earners inside a building.
func (bc *BuildingController) GetLeaderboard(c *gin.Context) {
	buildingID := c.Param("id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var building models.Building
	if err := bc.db.First(&building, "id = ?", buildingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
		return
	}

	var entries []models.Leaderboard
	if err := bc.db.Preload("User").Where("building_id = ?", buildingID).
		Order("user_points_in_building DESC").Limit(limit).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	type leaderboardRow struct {
		Username string `json:"username"`
		Points   uint   `json:"points"`
	}
	rows := make([]leaderboardRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, leaderboardRow{
			Username: entry.User.Username,
			Points:   entry.UserPointsInBuilding,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"building":    building.Name,
		"leaderboard": rows,
	})
}
