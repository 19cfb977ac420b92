package models

import "time"

type ShopItem struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Type      string    `json:"type" gorm:"not null;size:255"`
	Cost      uint      `json:"cost" gorm:"not null"`
	ImageURL  string    `json:"image_url" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
}

type UserItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_user_items_pair"`
	ItemID    string    `json:"item_id" gorm:"not null;size:191;uniqueIndex:uk_user_items_pair"`
	CreatedAt time.Time `json:"created_at"`

	User User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Item ShopItem `json:"item" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}
