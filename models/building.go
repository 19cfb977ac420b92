package models

import "time"

type Building struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:30"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	Radius    float64   `json:"radius" gorm:"not null"`
	ImageURL  string    `json:"image_url" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Floors    []BuildingFloor `json:"floors,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	Fountains []Fountain      `json:"fountains,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

type BuildingFloor struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BuildingID  string    `json:"building_id" gorm:"not null;size:191"`
	FloorNumber int       `json:"floor_number" gorm:"not null"`
	ImageURL    string    `json:"image_url" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`

	Building Building `json:"-" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

type Fountain struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	Location   string    `json:"location" gorm:"not null;size:255"`
	BuildingID string    `json:"building_id" gorm:"not null;size:191"`
	CreatedAt  time.Time `json:"created_at"`

	Building Building `json:"building" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

// Leaderboard tracks the droplets a user has earned inside one building.
type Leaderboard struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	BuildingID           string    `json:"building_id" gorm:"not null;size:191;uniqueIndex:uk_leaderboard_building_user"`
	UserID               string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_leaderboard_building_user"`
	UserPointsInBuilding uint      `json:"user_points_in_building" gorm:"default:0"`
	UpdatedAt            time.Time `json:"updated_at"`

	Building Building `json:"-" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	User     User     `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// FilledBottle records one bottle refill by a user at a building's fountain.
type FilledBottle struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"not null;size:191"`
	BuildingID string    `json:"building_id" gorm:"not null;size:191"`
	Day        time.Time `json:"day" gorm:"not null"`

	User     User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Building Building `json:"-" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}
