package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusdrop-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserFriend{},
		&models.PendingFriendInvite{},
		&models.Building{},
		&models.BuildingFloor{},
		&models.Fountain{},
		&models.Leaderboard{},
		&models.FilledBottle{},
		&models.Question{},
		&models.Answer{},
		&models.HasAnswered{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.ShopItem{},
		&models.UserItem{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user, err := models.NewUser(username, username+"@campus.test", "Secret123", models.UserOptions{PreVerified: true})
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user
}

// authAs injects the authenticated user the way the JWT middleware would.
func authAs(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("is_staff", user.IsStaff)
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonUnmarshalBody(w *httptest.ResponseRecorder, out interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), out)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return parsed
}

// dataUsernames extracts the username list from the legacy data envelope.
func dataUsernames(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	var parsed struct {
		Data []struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))

	names := make([]string, 0, len(parsed.Data))
	for _, entry := range parsed.Data {
		names = append(names, entry.Username)
	}
	return names
}
