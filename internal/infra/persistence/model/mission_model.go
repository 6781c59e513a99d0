package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MissionModel is the GORM-specific struct for the 'missions' table.
type MissionModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name                string         `gorm:"type:varchar(255);not null"`
	Frequency           string         `gorm:"type:varchar(20);not null"`
	Goals               datatypes.JSON `gorm:"not null"`
	Reward              datatypes.JSON `gorm:"not null"`
	AutoDisburseRewards bool           `gorm:"not null;default:false"`
	IsActive            bool           `gorm:"not null;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (MissionModel) TableName() string {
	return "missions"
}

// UserMissionModel is the GORM-specific struct for the 'user_missions' table.
type UserMissionModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_user_mission,priority:1"`
	MissionID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_user_mission,priority:2"`
	CurrentValues   datatypes.JSON `gorm:"not null"`
	IsCompleted     bool           `gorm:"not null;default:false"`
	CompletedAt     *time.Time
	IsDisbursed     bool `gorm:"not null;default:false"`
	DisbursedAt     *time.Time
	PeriodStart     *time.Time
	CompletionCount int64 `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserMissionModel) TableName() string {
	return "user_missions"
}
