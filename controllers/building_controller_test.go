package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campusdrop-api/models"
)

func newBuildingRouter(db *gorm.DB, user *models.User) *gin.Engine {
	bc := NewBuildingController(db)

	router := gin.New()
	buildings := router.Group("/buildings", authAs(user))
	{
		buildings.GET("/", bc.GetBuildings)
		buildings.GET("/:id", bc.GetBuilding)
		buildings.GET("/:id/leaderboard", bc.GetLeaderboard)
		buildings.POST("/", bc.CreateBuilding)
		buildings.POST("/:id/floors", bc.AddFloor)
	}
	return router
}

func TestGetBuildingIncludesFountains(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	building, fountain := seedBuildingWithFountain(t, db, "Library")
	router := newBuildingRouter(db, user)

	w := performJSON(t, router, http.MethodGet, "/buildings/"+building.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Building
	require.NoError(t, jsonUnmarshalBody(w, &fetched))
	assert.Equal(t, "Library", fetched.Name)
	require.Len(t, fetched.Fountains, 1)
	assert.Equal(t, fountain.ID, fetched.Fountains[0].ID)
}

func TestLeaderboardOrdersByPoints(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	building, _ := seedBuildingWithFountain(t, db, "Library")

	entries := []models.Leaderboard{
		{BuildingID: building.ID, UserID: alice.ID, UserPointsInBuilding: 30},
		{BuildingID: building.ID, UserID: bob.ID, UserPointsInBuilding: 80},
		{BuildingID: building.ID, UserID: carol.ID, UserPointsInBuilding: 50},
	}
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}

	router := newBuildingRouter(db, alice)
	w := performJSON(t, router, http.MethodGet, "/buildings/"+building.ID+"/leaderboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var parsed struct {
		Building    string `json:"building"`
		Leaderboard []struct {
			Username string `json:"username"`
			Points   uint   `json:"points"`
		} `json:"leaderboard"`
	}
	require.NoError(t, jsonUnmarshalBody(w, &parsed))
	assert.Equal(t, "Library", parsed.Building)
	require.Len(t, parsed.Leaderboard, 3)
	assert.Equal(t, "bob", parsed.Leaderboard[0].Username)
	assert.Equal(t, "carol", parsed.Leaderboard[1].Username)
	assert.Equal(t, "alice", parsed.Leaderboard[2].Username)
}

func TestLeaderboardRespectsLimit(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	building, _ := seedBuildingWithFountain(t, db, "Library")

	for _, entry := range []models.Leaderboard{
		{BuildingID: building.ID, UserID: alice.ID, UserPointsInBuilding: 30},
		{BuildingID: building.ID, UserID: bob.ID, UserPointsInBuilding: 80},
	} {
		require.NoError(t, db.Create(&entry).Error)
	}

	router := newBuildingRouter(db, alice)
	w := performJSON(t, router, http.MethodGet, "/buildings/"+building.ID+"/leaderboard?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var parsed struct {
		Leaderboard []struct {
			Username string `json:"username"`
		} `json:"leaderboard"`
	}
	require.NoError(t, jsonUnmarshalBody(w, &parsed))
	require.Len(t, parsed.Leaderboard, 1)
	assert.Equal(t, "bob", parsed.Leaderboard[0].Username)
}

func TestCreateBuildingAndFloor(t *testing.T) {
	db := newTestDB(t)
	staff := createTestUser(t, db, "staff")
	router := newBuildingRouter(db, staff)

	w := performJSON(t, router, http.MethodPost, "/buildings/", map[string]interface{}{
		"name":      "Sports Park",
		"latitude":  50.738,
		"longitude": -3.536,
		"radius":    80,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Building
	require.NoError(t, jsonUnmarshalBody(w, &created))

	w = performJSON(t, router, http.MethodPost, "/buildings/"+created.ID+"/floors",
		map[string]interface{}{"floor_number": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var floors int64
	db.Model(&models.BuildingFloor{}).Where("building_id = ?", created.ID).Count(&floors)
	assert.Equal(t, int64(1), floors)
}
