package models

import "time"

// UserFriend is a confirmed friendship edge. One row exists per pair, stored
// in canonical orientation (UserID < FriendID), so lookups from either side
// must match both columns.
type UserFriend struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_user_friends_pair"`
	FriendID  string    `json:"friend_id" gorm:"not null;size:191;uniqueIndex:uk_user_friends_pair"`
	CreatedAt time.Time `json:"created_at"`

	User   User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Friend User `json:"friend" gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
}

// CanonicalPair orders two user IDs into the stored orientation.
func CanonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// PendingFriendInvite is an outstanding friend request. UserID is the
// recipient (the one who must act), RequesterID the sender awaiting
// acceptance. The composite unique index is the authoritative guard against
// duplicate invites; application-level checks are an optimization only.
type PendingFriendInvite struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_pending_invites_pair"`
	RequesterID string    `json:"requester_id" gorm:"not null;size:191;uniqueIndex:uk_pending_invites_pair"`
	CreatedAt   time.Time `json:"created_at"`

	User      User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Requester User `json:"requester" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
}
