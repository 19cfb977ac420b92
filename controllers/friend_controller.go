package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"campusdrop-api/models"
	"campusdrop-api/repositories"
	"campusdrop-api/utils"
)

type FriendController struct {
	friends *repositories.FriendRepository
}

func NewFriendController(db *gorm.DB) *FriendController {
	return &FriendController{
		friends: repositories.NewFriendRepository(db),
	}
}

// usernameEntry is the element shape of the legacy data envelope.
type usernameEntry struct {
	Username string `json:"username"`
}

func usernames(users []models.User) []usernameEntry {
	entries := make([]usernameEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, usernameEntry{Username: user.Username})
	}
	return entries
}

// AllFriends handles POST /friends/allFriends. Response shape is
// {"data":[{"username":...},...]} for frontend compatibility.
func (fc *FriendController) AllFriends(c *gin.Context) {
	userID := c.GetString("user_id")

	friends, err := fc.friends.ListFriends(userID)
	if err != nil {
		utils.SendEmptyData(c)
		return
	}

	utils.SendData(c, usernames(friends))
}

// AllPending handles POST /friends/allPending: the users who have sent the
// subject an invite still awaiting a decision.
func (fc *FriendController) AllPending(c *gin.Context) {
	userID := c.GetString("user_id")

	requesters, err := fc.friends.ListPendingInvites(userID)
	if err != nil {
		utils.SendEmptyData(c)
		return
	}

	utils.SendData(c, usernames(requesters))
}

// RequestFriendBody uses the legacy field name the frontend sends.
type RequestFriendBody struct {
	FriendUsername string `json:"friend username"`
}

// RequestFriend handles POST /friends/request. Any precondition failure
// (unknown target, already friends, duplicate invite, self-request) degrades
// to the empty data envelope rather than an error status.
func (fc *FriendController) RequestFriend(c *gin.Context) {
	userID := c.GetString("user_id")

	var body RequestFriendBody
	if err := c.ShouldBindJSON(&body); err != nil || body.FriendUsername == "" {
		utils.SendEmptyData(c)
		return
	}

	outcome, err := fc.friends.Request(userID, body.FriendUsername)
	if err != nil || outcome != repositories.FriendOK {
		utils.SendEmptyData(c)
		return
	}

	utils.SendData(c, []usernameEntry{{Username: body.FriendUsername}})
}

type FriendActionRequest struct {
	Username string `json:"username" binding:"required"`
}

// AcceptFriend converts a pending invite into a confirmed friendship.
func (fc *FriendController) AcceptFriend(c *gin.Context) {
	userID := c.GetString("user_id")

	var req FriendActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := fc.friends.Accept(userID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept friend request"})
		return
	}

	switch outcome {
	case repositories.FriendOK:
		c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted successfully"})
	case repositories.FriendUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
	}
}

// RejectFriend removes a pending invite without creating a friendship.
func (fc *FriendController) RejectFriend(c *gin.Context) {
	userID := c.GetString("user_id")

	var req FriendActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := fc.friends.Reject(userID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject friend request"})
		return
	}

	switch outcome {
	case repositories.FriendOK:
		c.JSON(http.StatusOK, gin.H{"message": "Friend request rejected successfully"})
	case repositories.FriendUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
	}
}

// RemoveFriend deletes a confirmed friendship from either side.
func (fc *FriendController) RemoveFriend(c *gin.Context) {
	userID := c.GetString("user_id")

	var req FriendActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := fc.friends.Remove(userID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove friend"})
		return
	}

	switch outcome {
	case repositories.FriendOK:
		c.JSON(http.StatusOK, gin.H{"message": "Friend removed successfully"})
	case repositories.FriendUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Friendship not found"})
	}
}
