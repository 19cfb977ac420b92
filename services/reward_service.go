package services

import (
	"gorm.io/gorm"

	"campusdrop-api/models"
)

// RewardService applies XP and droplet rewards to users and keeps the
// per-building leaderboards in sync.
type RewardService struct {
	db *gorm.DB
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{db: db}
}

// Award adds xp and points to the user inside tx. When buildingID is
// non-empty the droplets also count toward that building's leaderboard.
func (rs *RewardService) Award(tx *gorm.DB, userID string, xp, points uint, buildingID string) error {
	updates := map[string]interface{}{}
	if xp > 0 {
		updates["xp"] = gorm.Expr("xp + ?", xp)
	}
	if points > 0 {
		updates["points"] = gorm.Expr("points + ?", points)
	}

	if len(updates) > 0 {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return err
		}
	}

	if buildingID != "" && points > 0 {
		if err := rs.bumpLeaderboard(tx, userID, buildingID, points); err != nil {
			return err
		}
	}

	return nil
}

func (rs *RewardService) bumpLeaderboard(tx *gorm.DB, userID, buildingID string, points uint) error {
	var entry models.Leaderboard
	err := tx.Where("building_id = ? AND user_id = ?", buildingID, userID).First(&entry).Error
	if err != nil {
		entry = models.Leaderboard{
			BuildingID:           buildingID,
			UserID:               userID,
			UserPointsInBuilding: points,
		}
		return tx.Create(&entry).Error
	}

	return tx.Model(&entry).
		Update("user_points_in_building", gorm.Expr("user_points_in_building + ?", points)).Error
}
