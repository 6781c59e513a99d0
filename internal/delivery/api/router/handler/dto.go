package handler

import (
	"time"

	"rewards/internal/domain/entity"
	"rewards/internal/usecase"

	"github.com/google/uuid"
)

// OfferResponse is the public view of a merchant offer
type OfferResponse struct {
	ID             uuid.UUID `json:"id"`
	MerchantID     uuid.UUID `json:"merchant_id"`
	Title          string    `json:"title"`
	UnitPrice      int64     `json:"unit_price"`
	FiatPrice      int64     `json:"fiat_price"`
	Quantity       int64     `json:"quantity"`
	AvailableAt    time.Time `json:"available_at"`
	AvailableUntil time.Time `json:"available_until"`
}

func newOfferResponse(offer *entity.MerchantOffer) *OfferResponse {
	if offer == nil {
		return nil
	}

	return &OfferResponse{
		ID:             offer.ID,
		MerchantID:     offer.MerchantID,
		Title:          offer.Title,
		UnitPrice:      offer.UnitPrice,
		FiatPrice:      offer.FiatPrice,
		Quantity:       offer.Quantity,
		AvailableAt:    offer.AvailableAt,
		AvailableUntil: offer.AvailableUntil,
	}
}

// ClaimResponse is the public view of a claim
type ClaimResponse struct {
	ID              uuid.UUID  `json:"id"`
	OrderNo         string     `json:"order_no"`
	MerchantOfferID uuid.UUID  `json:"merchant_offer_id"`
	VoucherID       *uuid.UUID `json:"voucher_id,omitempty"`
	Quantity        int64      `json:"quantity"`
	UnitPrice       int64      `json:"unit_price"`
	NetAmount       int64      `json:"net_amount"`
	PaymentMethod   string     `json:"payment_method"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

func newClaimResponse(claim *entity.MerchantOfferClaim) *ClaimResponse {
	if claim == nil {
		return nil
	}

	return &ClaimResponse{
		ID:              claim.ID,
		OrderNo:         claim.OrderNo,
		MerchantOfferID: claim.MerchantOfferID,
		VoucherID:       claim.VoucherID,
		Quantity:        claim.Quantity,
		UnitPrice:       claim.UnitPrice,
		NetAmount:       claim.NetAmount,
		PaymentMethod:   claim.PaymentMethod.String(),
		Status:          claim.Status.String(),
		CreatedAt:       claim.CreatedAt,
	}
}

// ClaimedOfferResponse is one row of the user's claimed offers
type ClaimedOfferResponse struct {
	Claim        *ClaimResponse `json:"claim"`
	Offer        *OfferResponse `json:"offer"`
	VoucherCode  string         `json:"voucher_code,omitempty"`
	VoucherState string         `json:"voucher_state,omitempty"`
	Redeemed     bool           `json:"redeemed"`
	RedeemedAt   *time.Time     `json:"redeemed_at,omitempty"`
}

func newClaimedOfferResponse(row *entity.ClaimedOffer) *ClaimedOfferResponse {
	out := &ClaimedOfferResponse{
		Claim: newClaimResponse(row.Claim),
		Offer: newOfferResponse(row.Offer),
	}

	if row.Redemption != nil {
		out.Redeemed = true
		redeemedAt := row.Redemption.CreatedAt
		out.RedeemedAt = &redeemedAt
	}

	// The code is only shown once the claim is paid
	if row.Voucher != nil {
		out.VoucherState = string(row.Voucher.State(out.Redeemed))
		if row.Claim != nil && row.Claim.Status == entity.ClaimStatusSuccess {
			out.VoucherCode = row.Voucher.Code
		}
	}

	return out
}

// LedgerEntryResponse is one points or component ledger entry
type LedgerEntryResponse struct {
	ID            uuid.UUID  `json:"id"`
	ComponentID   *uuid.UUID `json:"component_id,omitempty"`
	Seq           int64      `json:"seq"`
	Amount        int64      `json:"amount"`
	Direction     string     `json:"direction"`
	BalanceAfter  int64      `json:"balance_after"`
	ReferenceType string     `json:"reference_type"`
	ReferenceID   uuid.UUID  `json:"reference_id"`
	Remarks       string     `json:"remarks,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newPointEntryResponse(entry *entity.PointLedgerEntry) *LedgerEntryResponse {
	if entry == nil {
		return nil
	}

	return &LedgerEntryResponse{
		ID:            entry.ID,
		Seq:           entry.Seq,
		Amount:        entry.Amount,
		Direction:     entry.Direction.String(),
		BalanceAfter:  entry.BalanceAfter,
		ReferenceType: string(entry.ReferenceType),
		ReferenceID:   entry.ReferenceID,
		Remarks:       entry.Remarks,
		CreatedAt:     entry.CreatedAt,
	}
}

func newComponentEntryResponse(entry *entity.PointComponentLedgerEntry) *LedgerEntryResponse {
	componentID := entry.ComponentID

	return &LedgerEntryResponse{
		ID:            entry.ID,
		ComponentID:   &componentID,
		Seq:           entry.Seq,
		Amount:        entry.Amount,
		Direction:     entry.Direction.String(),
		BalanceAfter:  entry.BalanceAfter,
		ReferenceType: string(entry.ReferenceType),
		ReferenceID:   entry.ReferenceID,
		Remarks:       entry.Remarks,
		CreatedAt:     entry.CreatedAt,
	}
}

// ComponentBalanceResponse pairs a component with the user's balance
type ComponentBalanceResponse struct {
	ComponentID uuid.UUID `json:"component_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Balance     int64     `json:"balance"`
}

// CombineResponse is the outcome of converting components into points
type CombineResponse struct {
	RecipeID     uuid.UUID              `json:"recipe_id"`
	RewardPoints int64                  `json:"reward_points"`
	PointsEntry  *LedgerEntryResponse   `json:"points_entry"`
	Debits       []*LedgerEntryResponse `json:"debits"`
}

func newCombineResponse(out *usecase.CombineOutput) *CombineResponse {
	debits := make([]*LedgerEntryResponse, 0, len(out.Debits))
	for _, debit := range out.Debits {
		debits = append(debits, newComponentEntryResponse(debit))
	}

	return &CombineResponse{
		RecipeID:     out.Recipe.ID,
		RewardPoints: out.Recipe.RewardPoints,
		PointsEntry:  newPointEntryResponse(out.PointsEntry),
		Debits:       debits,
	}
}

// MissionResponse is a mission with the caller's progress
type MissionResponse struct {
	ID                  uuid.UUID             `json:"id"`
	Name                string                `json:"name"`
	Frequency           string                `json:"frequency"`
	Goals               []entity.MissionGoal  `json:"goals"`
	Reward              entity.MissionReward  `json:"reward"`
	AutoDisburseRewards bool                  `json:"auto_disburse_rewards"`
	Progress            *MissionProgressEntry `json:"progress,omitempty"`
}

// MissionProgressEntry is the user's state on one mission
type MissionProgressEntry struct {
	CurrentValues   map[string]int64 `json:"current_values"`
	IsCompleted     bool             `json:"is_completed"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	IsDisbursed     bool             `json:"is_disbursed"`
	DisbursedAt     *time.Time       `json:"disbursed_at,omitempty"`
	CompletionCount int64            `json:"completion_count"`
}

func newMissionResponse(mission *entity.Mission, progress *entity.UserMission) *MissionResponse {
	out := &MissionResponse{
		ID:                  mission.ID,
		Name:                mission.Name,
		Frequency:           mission.Frequency.String(),
		Goals:               mission.Goals,
		Reward:              mission.Reward,
		AutoDisburseRewards: mission.AutoDisburseRewards,
	}

	if progress != nil {
		values := progress.CurrentValues
		if values == nil {
			values = map[string]int64{}
		}
		out.Progress = &MissionProgressEntry{
			CurrentValues:   values,
			IsCompleted:     progress.IsCompleted,
			CompletedAt:     progress.CompletedAt,
			IsDisbursed:     progress.IsDisbursed,
			DisbursedAt:     progress.DisbursedAt,
			CompletionCount: progress.CompletionCount,
		}
	}

	return out
}
