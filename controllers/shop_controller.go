package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusdrop-api/models"
)

type ShopController struct {
	db *gorm.DB
}

func NewShopController(db *gorm.DB) *ShopController {
	return &ShopController{db: db}
}

func (sc *ShopController) GetItems(c *gin.Context) {
	var items []models.ShopItem
	if err := sc.db.Order("cost").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shop items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (sc *ShopController) GetInventory(c *gin.Context) {
	userID := c.GetString("user_id")

	var owned []models.UserItem
	if err := sc.db.Preload("Item").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&owned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	c.JSON(http.StatusOK, owned)
}

type PurchaseRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// PurchaseItem deducts the item cost from the user's droplets and records
// ownership, both inside one transaction so a failed insert never charges.
func (sc *ShopController) PurchaseItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.ShopItem
	if err := sc.db.First(&item, "id = ?", req.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var existing models.UserItem
	if err := sc.db.Where("user_id = ? AND item_id = ?", userID, item.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Item already owned"})
		return
	}

	var remaining uint
	err := sc.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if user.Points < item.Cost {
			return gorm.ErrInvalidData
		}

		if err := tx.Model(&user).
			Update("points", gorm.Expr("points - ?", item.Cost)).Error; err != nil {
			return err
		}
		remaining = user.Points - item.Cost

		purchase := models.UserItem{
			UserID: userID,
			ItemID: item.ID,
		}
		return tx.Create(&purchase).Error
	})
	if err != nil {
		if err == gorm.ErrInvalidData {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Not enough droplets"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purchase item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Item purchased successfully",
		"item":             item,
		"remaining_points": remaining,
	})
}

type CreateItemRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Type     string `json:"type" binding:"required,max=255"`
	Cost     uint   `json:"cost" binding:"required"`
	ImageURL string `json:"image_url"`
}

// CreateItem adds a shop item. Staff only.
func (sc *ShopController) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.ShopItem{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Type:     req.Type,
		Cost:     req.Cost,
		ImageURL: req.ImageURL,
	}

	if err := sc.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shop item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}
