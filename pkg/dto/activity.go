package dto

// ActivityCreate represents the data needed to append an activity log entry.
// Amount is free-text display copy ("+$15,000", "1,000 RWA") and is not
// validated as a decimal.
type ActivityCreate struct {
	Type        string `json:"type" validate:"required,oneof=asset_created bridge_deployed token_minted transfer"`
	Description string `json:"description" validate:"required,max=500"`
	Amount      string `json:"amount,omitempty" validate:"max=50"`
	Owner       string `json:"owner" validate:"required,max=100"`
}
