package models

import "time"

type Achievement struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	Name         string    `json:"name" gorm:"size:255;default:''"`
	Challenge    string    `json:"challenge" gorm:"not null;size:255"`
	XPReward     uint      `json:"xp_reward" gorm:"not null"`
	PointsReward uint      `json:"points_reward" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserAchievement struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_user_achievements_pair"`
	AchievementID string    `json:"achievement_id" gorm:"not null;size:191;uniqueIndex:uk_user_achievements_pair"`
	CreatedAt     time.Time `json:"created_at"`

	User        User        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Achievement Achievement `json:"achievement" gorm:"foreignKey:AchievementID;constraint:OnDelete:CASCADE"`
}
