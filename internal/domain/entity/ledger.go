package entity

import (
	"time"

	"github.com/google/uuid"
)

// Direction tells whether a ledger entry adds to or takes from a balance.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// String returns the string representation of the Direction.
func (d Direction) String() string {
	return string(d)
}

// IsValid checks if the Direction is a valid value.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionCredit, DirectionDebit:
		return true
	default:
		return false
	}
}

// Signed returns amount with the sign implied by the direction.
func (d Direction) Signed(amount int64) int64 {
	if d == DirectionDebit {
		return -amount
	}

	return amount
}

// ReferenceType names the kind of record that caused a ledger movement.
type ReferenceType string

const (
	ReferenceMerchantOfferClaim ReferenceType = "merchant_offer_claim"
	ReferenceMission            ReferenceType = "mission"
	ReferenceComponentRecipe    ReferenceType = "component_recipe"
	ReferenceAdjustment         ReferenceType = "adjustment"
)

// LedgerReference identifies the subject of a ledger movement.
type LedgerReference struct {
	Type ReferenceType
	ID   uuid.UUID
}

// PointLedgerEntry is an immutable row of the points ledger.
// BalanceAfter is fixed at insert time and equals the signed sum of all
// entries of the user up to and including this one.
type PointLedgerEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Seq           int64
	Amount        int64
	Direction     Direction
	BalanceAfter  int64
	ReferenceType ReferenceType
	ReferenceID   uuid.UUID
	Remarks       string
	CreatedAt     time.Time
}

// SignedAmount returns the amount with its direction applied.
func (e *PointLedgerEntry) SignedAmount() int64 {
	return e.Direction.Signed(e.Amount)
}

// PointComponent is a composable "ingredient" currency, e.g. egg, rice or box tokens.
type PointComponent struct {
	ID        uuid.UUID
	Code      string
	Name      string
	CreatedAt time.Time
}

// PointComponentLedgerEntry mirrors PointLedgerEntry, scoped by component.
type PointComponentLedgerEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ComponentID   uuid.UUID
	Seq           int64
	Amount        int64
	Direction     Direction
	BalanceAfter  int64
	ReferenceType ReferenceType
	ReferenceID   uuid.UUID
	Remarks       string
	CreatedAt     time.Time
}

// ComponentAmount is a quantity of one component.
type ComponentAmount struct {
	ComponentID uuid.UUID `json:"component_id"`
	Quantity    int64     `json:"quantity"`
}

// ComponentRecipe turns a set of components into points.
type ComponentRecipe struct {
	ID           uuid.UUID
	Name         string
	Requirements []ComponentAmount
	RewardPoints int64
	IsActive     bool
	CreatedAt    time.Time
}
