package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"campusdrop-api/models"
)

// FriendOutcome classifies the result of a friend-graph operation. The legacy
// HTTP adapter collapses everything except FriendOK to an empty response;
// newer endpoints map each outcome to its own status code.
type FriendOutcome int

const (
	FriendOK FriendOutcome = iota
	FriendUserNotFound
	FriendAlreadyFriends
	FriendDuplicateInvite
	FriendNoInvite
	FriendSelfRequest
	FriendNotFriends
)

type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// ListFriends returns the users confirmed as friends of userID, resolved from
// either orientation of the canonical edge row.
func (r *FriendRepository) ListFriends(userID string) ([]models.User, error) {
	var edges []models.UserFriend
	if err := r.db.Where("user_id = ? OR friend_id = ?", userID, userID).Find(&edges).Error; err != nil {
		return nil, err
	}

	friendIDs := make([]string, 0, len(edges))
	for _, edge := range edges {
		if edge.UserID == userID {
			friendIDs = append(friendIDs, edge.FriendID)
		} else {
			friendIDs = append(friendIDs, edge.UserID)
		}
	}

	if len(friendIDs) == 0 {
		return []models.User{}, nil
	}

	var friends []models.User
	if err := r.db.Where("id IN ?", friendIDs).Order("username").Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

// ListPendingInvites returns the users who have sent userID an invite that is
// still awaiting a decision.
func (r *FriendRepository) ListPendingInvites(userID string) ([]models.User, error) {
	var invites []models.PendingFriendInvite
	if err := r.db.Preload("Requester").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&invites).Error; err != nil {
		return nil, err
	}

	requesters := make([]models.User, 0, len(invites))
	for _, invite := range invites {
		requesters = append(requesters, invite.Requester)
	}
	return requesters, nil
}

// Request creates a pending invite from the subject to targetUsername. Every
// precondition failure is reported through the outcome, never as an error;
// errors are reserved for storage faults.
func (r *FriendRepository) Request(subjectID, targetUsername string) (FriendOutcome, error) {
	var target models.User
	if err := r.db.Where("username = ?", targetUsername).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FriendUserNotFound, nil
		}
		return FriendUserNotFound, err
	}

	if target.ID == subjectID {
		return FriendSelfRequest, nil
	}

	areFriends, err := r.AreFriends(subjectID, target.ID)
	if err != nil {
		return FriendAlreadyFriends, err
	}
	if areFriends {
		return FriendAlreadyFriends, nil
	}

	var existing models.PendingFriendInvite
	err = r.db.Where("user_id = ? AND requester_id = ?", target.ID, subjectID).First(&existing).Error
	if err == nil {
		return FriendDuplicateInvite, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return FriendDuplicateInvite, err
	}

	invite := models.PendingFriendInvite{
		UserID:      target.ID,
		RequesterID: subjectID,
	}
	if err := r.db.Create(&invite).Error; err != nil {
		// A concurrent identical request can win the race between the check
		// above and this insert. The unique pair index is the authoritative
		// guard, so a failed insert is the same conflict outcome.
		return FriendDuplicateInvite, nil
	}

	return FriendOK, nil
}

// Accept converts a pending invite from requesterUsername into a confirmed
// edge. The invite removal and edge creation happen in one transaction.
func (r *FriendRepository) Accept(subjectID, requesterUsername string) (FriendOutcome, error) {
	var requester models.User
	if err := r.db.Where("username = ?", requesterUsername).First(&requester).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FriendUserNotFound, nil
		}
		return FriendUserNotFound, err
	}

	var invite models.PendingFriendInvite
	if err := r.db.Where("user_id = ? AND requester_id = ?", subjectID, requester.ID).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FriendNoInvite, nil
		}
		return FriendNoInvite, err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&invite).Error; err != nil {
			return err
		}

		user1ID, user2ID := models.CanonicalPair(subjectID, requester.ID)
		edge := models.UserFriend{
			UserID:   user1ID,
			FriendID: user2ID,
		}
		return tx.Create(&edge).Error
	})
	if err != nil {
		return FriendOK, err
	}

	return FriendOK, nil
}

// Reject removes a pending invite without creating an edge.
func (r *FriendRepository) Reject(subjectID, requesterUsername string) (FriendOutcome, error) {
	var requester models.User
	if err := r.db.Where("username = ?", requesterUsername).First(&requester).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FriendUserNotFound, nil
		}
		return FriendUserNotFound, err
	}

	result := r.db.Where("user_id = ? AND requester_id = ?", subjectID, requester.ID).
		Delete(&models.PendingFriendInvite{})
	if result.Error != nil {
		return FriendNoInvite, result.Error
	}
	if result.RowsAffected == 0 {
		return FriendNoInvite, nil
	}
	return FriendOK, nil
}

// Remove deletes a confirmed edge, the symmetric inverse of Accept.
func (r *FriendRepository) Remove(subjectID, friendUsername string) (FriendOutcome, error) {
	var friend models.User
	if err := r.db.Where("username = ?", friendUsername).First(&friend).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FriendUserNotFound, nil
		}
		return FriendUserNotFound, err
	}

	user1ID, user2ID := models.CanonicalPair(subjectID, friend.ID)
	result := r.db.Where("user_id = ? AND friend_id = ?", user1ID, user2ID).Delete(&models.UserFriend{})
	if result.Error != nil {
		return FriendNotFriends, result.Error
	}
	if result.RowsAffected == 0 {
		return FriendNotFriends, nil
	}
	return FriendOK, nil
}

// AreFriends reports whether a confirmed edge exists between the two users.
func (r *FriendRepository) AreFriends(user1ID, user2ID string) (bool, error) {
	user1ID, user2ID = models.CanonicalPair(user1ID, user2ID)

	var edge models.UserFriend
	err := r.db.Where("user_id = ? AND friend_id = ?", user1ID, user2ID).First(&edge).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// DeleteStaleInvites purges pending invites older than the cutoff and returns
// how many were removed.
func (r *FriendRepository) DeleteStaleInvites(olderThan time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", olderThan).Delete(&models.PendingFriendInvite{})
	return result.RowsAffected, result.Error
}
