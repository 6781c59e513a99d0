package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type claimRequest struct {
	OfferID       uuid.UUID `json:"offer_id" validate:"required"`
	Quantity      int64     `json:"quantity" validate:"gt=0,lte=100"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=points fiat"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&claimRequest{OfferID: uuid.New(), Quantity: 1, PaymentMethod: "points"}))

	err := v.Validate(&claimRequest{Quantity: 0, PaymentMethod: "cash"})
	require.Error(t, err)

	var validationErr *Error
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"offer_id is required",
		"quantity must be greater than 0",
		"payment_method must be one of [points fiat]",
	}, validationErr.Fields)

	err = v.Validate(&claimRequest{OfferID: uuid.New(), Quantity: 101, PaymentMethod: "fiat"})
	require.Error(t, err)
	assert.Equal(t, "quantity must be at most 100", err.Error())
}
