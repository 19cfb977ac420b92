package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusdrop-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
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
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// The unique pair indexes on user_friends, pending_friend_invites,
	// user_achievements and user_items come from the model tags. What is left
	// here are the guards AutoMigrate cannot express.

	// Prevent self-friendship at the storage layer
	if err := db.Exec("ALTER TABLE user_friends ADD CONSTRAINT ck_user_friends_no_self CHECK (user_id != friend_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add check constraint for user_friends: %v\n", err)
	}

	// Prevent self-invites
	if err := db.Exec("ALTER TABLE pending_friend_invites ADD CONSTRAINT ck_pending_invites_no_self CHECK (user_id != requester_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for pending_friend_invites: %v\n", err)
	}

	// Bottle fill lookups are always (user, building, day range)
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_filled_bottles_user_building_day ON filled_bottles(user_id, building_id, day)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for filled_bottles: %v\n", err)
	}

	return nil
}

// SeedData populates the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	admin, err := models.NewStaffUser("admin", "admin@campusdrop.app", "change-me", models.UserOptions{Name: "Site Admin"})
	if err != nil {
		return fmt.Errorf("failed to build admin account: %w", err)
	}
	if err := db.Create(admin).Error; err != nil {
		fmt.Printf("Warning: Could not create admin account: %v\n", err)
	}

	buildings := []models.Building{
		{ID: "building-library", Name: "Main Library", Latitude: 50.7374, Longitude: -3.5351, Radius: 60},
		{ID: "building-forum", Name: "The Forum", Latitude: 50.7357, Longitude: -3.5339, Radius: 45},
	}
	for _, building := range buildings {
		if err := db.Create(&building).Error; err != nil {
			fmt.Printf("Warning: Could not create building %s: %v\n", building.Name, err)
		}
	}

	fountains := []models.Fountain{
		{ID: "fountain-library-ground", Location: "Ground floor, next to reception", BuildingID: "building-library"},
		{ID: "fountain-forum-cafe", Location: "Beside the cafe entrance", BuildingID: "building-forum"},
	}
	for _, fountain := range fountains {
		if err := db.Create(&fountain).Error; err != nil {
			fmt.Printf("Warning: Could not create fountain %s: %v\n", fountain.ID, err)
		}
	}

	question := models.Question{ID: "question-1", Text: "How much of the human body is water?"}
	if err := db.Create(&question).Error; err != nil {
		fmt.Printf("Warning: Could not create question: %v\n", err)
	}
	answers := []models.Answer{
		{ID: "answer-1a", Text: "Around 30%", QuestionID: question.ID},
		{ID: "answer-1b", Text: "Around 60%", QuestionID: question.ID, IsCorrect: true},
		{ID: "answer-1c", Text: "Around 90%", QuestionID: question.ID},
	}
	for _, answer := range answers {
		if err := db.Create(&answer).Error; err != nil {
			fmt.Printf("Warning: Could not create answer: %v\n", err)
		}
	}

	items := []models.ShopItem{
		{ID: "item-sticker-drop", Name: "Droplet sticker pack", Type: "sticker", Cost: 50},
		{ID: "item-bottle-steel", Name: "Steel campus bottle", Type: "bottle", Cost: 400},
	}
	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			fmt.Printf("Warning: Could not create shop item %s: %v\n", item.Name, err)
		}
	}

	fmt.Println("Database seeded with starter campus data")
	return nil
}
