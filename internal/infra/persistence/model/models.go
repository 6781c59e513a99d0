// Package model holds the GORM persistence structs.
package model

// All returns every persistence model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&PointComponentModel{},
		&PointLedgerEntryModel{},
		&PointComponentLedgerEntryModel{},
		&ComponentRecipeModel{},
		&MerchantModel{},
		&MerchantOfferModel{},
		&MerchantOfferVoucherModel{},
		&MerchantOfferClaimModel{},
		&PaymentTransactionModel{},
		&ClaimRedemptionModel{},
		&MissionModel{},
		&UserMissionModel{},
	}
}
