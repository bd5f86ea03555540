// Package models contains data structures for the application's domain entities.
package models

import "time"

// Ad represents a classified advertisement owned by a user.
//
// ID and CreatedAt are assigned by the store at insert time and never change
// afterwards. Description is nullable and serialized as JSON null when unset.
type Ad struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;index" json:"title"`
	Description *string   `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       User      `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for Ad.
func (Ad) TableName() string {
	return "advertisements"
}
