package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campusdrop-api/models"
)

func newShopRouter(db *gorm.DB, user *models.User) *gin.Engine {
	sc := NewShopController(db)

	router := gin.New()
	shop := router.Group("/shop", authAs(user))
	{
		shop.GET("/items", sc.GetItems)
		shop.GET("/inventory", sc.GetInventory)
		shop.POST("/purchase", sc.PurchaseItem)
		shop.POST("/items", sc.CreateItem)
	}
	return router
}

func seedShopItem(t *testing.T, db *gorm.DB, name string, cost uint) models.ShopItem {
	t.Helper()

	item := models.ShopItem{ID: uuid.New().String(), Name: name, Type: "badge", Cost: cost}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func setPoints(t *testing.T, db *gorm.DB, user *models.User, points uint) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("points", points).Error)
}

func TestPurchaseItemDeductsPoints(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer")
	setPoints(t, db, user, 100)
	item := seedShopItem(t, db, "Golden Bottle", 40)
	router := newShopRouter(db, user)

	w := performJSON(t, router, http.MethodPost, "/shop/purchase",
		map[string]string{"item_id": item.ID})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(60), body["remaining_points"])

	var refreshed models.User
	require.NoError(t, db.First(&refreshed, "id = ?", user.ID).Error)
	assert.Equal(t, uint(60), refreshed.Points)

	var owned int64
	db.Model(&models.UserItem{}).Where("user_id = ? AND item_id = ?", user.ID, item.ID).Count(&owned)
	assert.Equal(t, int64(1), owned)
}

func TestPurchaseItemInsufficientPoints(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer")
	setPoints(t, db, user, 10)
	item := seedShopItem(t, db, "Golden Bottle", 40)
	router := newShopRouter(db, user)

	w := performJSON(t, router, http.MethodPost, "/shop/purchase",
		map[string]string{"item_id": item.ID})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	// Balance untouched, nothing owned
	var refreshed models.User
	require.NoError(t, db.First(&refreshed, "id = ?", user.ID).Error)
	assert.Equal(t, uint(10), refreshed.Points)

	var owned int64
	db.Model(&models.UserItem{}).Where("user_id = ?", user.ID).Count(&owned)
	assert.Equal(t, int64(0), owned)
}

func TestPurchaseItemTwiceIsRejected(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer")
	setPoints(t, db, user, 100)
	item := seedShopItem(t, db, "Golden Bottle", 40)
	router := newShopRouter(db, user)

	w := performJSON(t, router, http.MethodPost, "/shop/purchase",
		map[string]string{"item_id": item.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, router, http.MethodPost, "/shop/purchase",
		map[string]string{"item_id": item.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Only charged once
	var refreshed models.User
	require.NoError(t, db.First(&refreshed, "id = ?", user.ID).Error)
	assert.Equal(t, uint(60), refreshed.Points)
}

func TestPurchaseUnknownItem(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer")
	router := newShopRouter(db, user)

	w := performJSON(t, router, http.MethodPost, "/shop/purchase",
		map[string]string{"item_id": uuid.New().String()})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInventoryListsOwnedItems(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer")
	other := createTestUser(t, db, "other")
	setPoints(t, db, user, 100)
	setPoints(t, db, other, 100)
	hat := seedShopItem(t, db, "Hat", 10)
	cape := seedShopItem(t, db, "Cape", 20)

	userRouter := newShopRouter(db, user)
	otherRouter := newShopRouter(db, other)

	performJSON(t, userRouter, http.MethodPost, "/shop/purchase",
		map[string]string{"item_id": hat.ID})
	performJSON(t, otherRouter, http.MethodPost, "/shop/purchase",
		map[string]string{"item_id": cape.ID})

	w := performJSON(t, userRouter, http.MethodGet, "/shop/inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var owned []models.UserItem
	require.NoError(t, jsonUnmarshalBody(w, &owned))
	require.Len(t, owned, 1)
	assert.Equal(t, "Hat", owned[0].Item.Name)
}

func TestCreateItem(t *testing.T) {
	db := newTestDB(t)
	staff := createTestUser(t, db, "staff")
	router := newShopRouter(db, staff)

	w := performJSON(t, router, http.MethodPost, "/shop/items", map[string]interface{}{
		"name": "Sticker",
		"type": "cosmetic",
		"cost": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var items int64
	db.Model(&models.ShopItem{}).Count(&items)
	assert.Equal(t, int64(1), items)
}
