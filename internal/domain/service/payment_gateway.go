package service

import "context"

// PaymentContact identifies the payer to the gateway.
type PaymentContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PaymentRequest is the input of PaymentGateway.CreateTransaction.
type PaymentRequest struct {
	Amount      int64
	Currency    string
	Reference   string
	CallbackURL string
	Method      string
	Contact     PaymentContact
}

// PaymentRedirect tells the client where to complete payment.
type PaymentRedirect struct {
	GatewayReference string            `json:"gateway_reference"`
	RedirectURL      string            `json:"redirect_url"`
	FormFields       map[string]string `json:"form_fields,omitempty"`
}

// PaymentGateway is the third-party fiat payment provider.
type PaymentGateway interface {
	CreateTransaction(ctx context.Context, req *PaymentRequest) (*PaymentRedirect, error)
}
