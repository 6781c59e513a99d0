package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event names shared with the rest of the platform. Missions reference them in their goals.
const (
	EventClaimed            = "Claimed"
	EventRedeemed           = "Redeemed"
	EventCommentCreated     = "CommentCreated"
	EventInteractionCreated = "InteractionCreated"
	EventMissionCompleted   = "MissionCompleted"
)

// DomainEvent is published after the transaction that produced it has committed.
type DomainEvent struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	UserID     uuid.UUID         `json:"user_id"`
	RequestID  string            `json:"request_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Target     *TargetRef        `json:"target,omitempty"`
	Payload    map[string]string `json:"payload,omitempty"`
}

// NewClaimedEvent builds Claimed{offer_id, user_id, claim_id}.
func NewClaimedEvent(claim *MerchantOfferClaim) *DomainEvent {
	target := MerchantOfferRef(claim.MerchantOfferID)

	return &DomainEvent{
		ID:         uuid.New(),
		Name:       EventClaimed,
		UserID:     claim.UserID,
		OccurredAt: time.Now().UTC(),
		Target:     &target,
		Payload: map[string]string{
			"offer_id": claim.MerchantOfferID.String(),
			"user_id":  claim.UserID.String(),
			"claim_id": claim.ID.String(),
			"status":   claim.Status.String(),
		},
	}
}

// NewRedeemedEvent builds Redeemed{offer_id, user_id, claim_id}.
func NewRedeemedEvent(redemption *ClaimRedemption) *DomainEvent {
	target := MerchantOfferRef(redemption.MerchantOfferID)

	return &DomainEvent{
		ID:         uuid.New(),
		Name:       EventRedeemed,
		UserID:     redemption.UserID,
		OccurredAt: time.Now().UTC(),
		Target:     &target,
		Payload: map[string]string{
			"offer_id": redemption.MerchantOfferID.String(),
			"user_id":  redemption.UserID.String(),
			"claim_id": redemption.ClaimID.String(),
		},
	}
}

// NewMissionCompletedEvent builds MissionCompleted{mission_id, user_id, disbursed}.
func NewMissionCompletedEvent(progress *UserMission) *DomainEvent {
	disbursed := "false"
	if progress.IsDisbursed {
		disbursed = "true"
	}

	return &DomainEvent{
		ID:         uuid.New(),
		Name:       EventMissionCompleted,
		UserID:     progress.UserID,
		OccurredAt: time.Now().UTC(),
		Payload: map[string]string{
			"mission_id": progress.MissionID.String(),
			"user_id":    progress.UserID.String(),
			"disbursed":  disbursed,
		},
	}
}
