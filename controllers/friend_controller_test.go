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

// newFriendRouter wires the legacy and v1 friend endpoints behind a stub auth
// layer acting as the given user.
func newFriendRouter(db *gorm.DB, user *models.User) *gin.Engine {
	fc := NewFriendController(db)

	router := gin.New()
	friends := router.Group("/friends", authAs(user))
	{
		friends.POST("/allFriends", fc.AllFriends)
		friends.POST("/allPending", fc.AllPending)
		friends.POST("/request", fc.RequestFriend)
		friends.POST("/accept", fc.AcceptFriend)
		friends.POST("/reject", fc.RejectFriend)
		friends.DELETE("/remove", fc.RemoveFriend)
	}
	return router
}

func TestAllFriendsEmpty(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	router := newFriendRouter(db, alice)

	w := performJSON(t, router, http.MethodPost, "/friends/allFriends", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestRequestFriendEndpoint(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	aliceRouter := newFriendRouter(db, alice)
	bobRouter := newFriendRouter(db, bob)

	w := performJSON(t, aliceRouter, http.MethodPost, "/friends/request",
		map[string]string{"friend username": "bob"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"bob"}, dataUsernames(t, w))

	// Bob sees the pending invite; Alice's own pending list is unaffected
	w = performJSON(t, bobRouter, http.MethodPost, "/friends/allPending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"alice"}, dataUsernames(t, w))

	w = performJSON(t, aliceRouter, http.MethodPost, "/friends/allPending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, dataUsernames(t, w))
}

func TestRequestFriendFailuresAreEmptyData(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")
	router := newFriendRouter(db, alice)

	// Unknown target
	w := performJSON(t, router, http.MethodPost, "/friends/request",
		map[string]string{"friend username": "nobody"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())

	// Missing body
	w = performJSON(t, router, http.MethodPost, "/friends/request", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())

	// Duplicate request
	w = performJSON(t, router, http.MethodPost, "/friends/request",
		map[string]string{"friend username": "bob"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"bob"}, dataUsernames(t, w))

	w = performJSON(t, router, http.MethodPost, "/friends/request",
		map[string]string{"friend username": "bob"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())

	var count int64
	db.Model(&models.PendingFriendInvite{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAcceptFlowEndToEnd(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	aliceRouter := newFriendRouter(db, alice)
	bobRouter := newFriendRouter(db, bob)

	w := performJSON(t, aliceRouter, http.MethodPost, "/friends/request",
		map[string]string{"friend username": "bob"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, bobRouter, http.MethodPost, "/friends/accept",
		map[string]string{"username": "alice"})
	require.Equal(t, http.StatusOK, w.Code)

	// Both sides see the friendship
	w = performJSON(t, aliceRouter, http.MethodPost, "/friends/allFriends", nil)
	assert.Equal(t, []string{"bob"}, dataUsernames(t, w))

	w = performJSON(t, bobRouter, http.MethodPost, "/friends/allFriends", nil)
	assert.Equal(t, []string{"alice"}, dataUsernames(t, w))

	// Invite is consumed
	w = performJSON(t, bobRouter, http.MethodPost, "/friends/allPending", nil)
	assert.Empty(t, dataUsernames(t, w))

	// Requesting again is now a no-op
	w = performJSON(t, aliceRouter, http.MethodPost, "/friends/request",
		map[string]string{"friend username": "bob"})
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestAcceptWithoutInviteReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")
	router := newFriendRouter(db, alice)

	w := performJSON(t, router, http.MethodPost, "/friends/accept",
		map[string]string{"username": "bob"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(t, router, http.MethodPost, "/friends/accept",
		map[string]string{"username": "nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectAndRemoveEndpoints(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	aliceRouter := newFriendRouter(db, alice)
	bobRouter := newFriendRouter(db, bob)

	// Reject leaves no friendship
	performJSON(t, aliceRouter, http.MethodPost, "/friends/request",
		map[string]string{"friend username": "bob"})
	w := performJSON(t, bobRouter, http.MethodPost, "/friends/reject",
		map[string]string{"username": "alice"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, bobRouter, http.MethodPost, "/friends/allFriends", nil)
	assert.Empty(t, dataUsernames(t, w))

	// Accept then remove
	performJSON(t, aliceRouter, http.MethodPost, "/friends/request",
		map[string]string{"friend username": "bob"})
	performJSON(t, bobRouter, http.MethodPost, "/friends/accept",
		map[string]string{"username": "alice"})

	w = performJSON(t, aliceRouter, http.MethodDelete, "/friends/remove",
		map[string]string{"username": "bob"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, bobRouter, http.MethodPost, "/friends/allFriends", nil)
	assert.Empty(t, dataUsernames(t, w))
}
