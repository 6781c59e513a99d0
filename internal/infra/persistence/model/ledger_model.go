package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PointLedgerEntryModel is the GORM-specific struct for the 'point_ledger_entries' table.
// Rows are append-only; (user_id, seq) is unique.
type PointLedgerEntryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_point_ledger_user_seq,priority:1"`
	Seq           int64     `gorm:"not null;uniqueIndex:uq_point_ledger_user_seq,priority:2"`
	Amount        int64     `gorm:"not null;check:chk_point_ledger_amount,amount > 0"`
	Direction     string    `gorm:"type:varchar(10);not null"`
	BalanceAfter  int64     `gorm:"not null;check:chk_point_ledger_balance,balance_after >= 0"`
	ReferenceType string    `gorm:"type:varchar(50);not null;index:idx_point_ledger_reference,priority:1"`
	ReferenceID   uuid.UUID `gorm:"type:uuid;not null;index:idx_point_ledger_reference,priority:2"`
	Remarks       string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PointLedgerEntryModel) TableName() string {
	return "point_ledger_entries"
}

// PointComponentModel is the GORM-specific struct for the 'point_components' table.
type PointComponentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointComponentModel) TableName() string {
	return "point_components"
}

// PointComponentLedgerEntryModel is the GORM-specific struct for the 'point_component_ledger_entries' table.
type PointComponentLedgerEntryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_component_ledger_user_seq,priority:1"`
	ComponentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_component_ledger_user_seq,priority:2"`
	Seq           int64     `gorm:"not null;uniqueIndex:uq_component_ledger_user_seq,priority:3"`
	Amount        int64     `gorm:"not null;check:chk_component_ledger_amount,amount > 0"`
	Direction     string    `gorm:"type:varchar(10);not null"`
	BalanceAfter  int64     `gorm:"not null;check:chk_component_ledger_balance,balance_after >= 0"`
	ReferenceType string    `gorm:"type:varchar(50);not null"`
	ReferenceID   uuid.UUID `gorm:"type:uuid;not null"`
	Remarks       string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PointComponentLedgerEntryModel) TableName() string {
	return "point_component_ledger_entries"
}

// ComponentRecipeModel is the GORM-specific struct for the 'component_recipes' table.
// Requirements holds a JSON array of {component_id, quantity}.
type ComponentRecipeModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Requirements datatypes.JSON `gorm:"not null"`
	RewardPoints int64          `gorm:"not null"`
	IsActive     bool           `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComponentRecipeModel) TableName() string {
	return "component_recipes"
}
