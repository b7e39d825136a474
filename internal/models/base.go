package models

import (
	"gorm.io/gorm"
	"time"
)

// BaseModel holds the bookkeeping columns. UpdatedAt is what the janitor
// compares against the draft TTL.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
