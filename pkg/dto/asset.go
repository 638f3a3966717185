// Package dto defines the create and update payloads accepted at the HTTP
// boundary. Validation lives entirely in the struct tags; the ledger store
// assumes well-typed input. Update DTOs use pointer fields so a shallow merge
// only touches fields present in the request — id and createdAt are not
// representable here and therefore can never be overwritten.
package dto

// AssetCreate represents the data needed to tokenize a new asset.
type AssetCreate struct {
	Name        string `json:"name" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,oneof=real_estate commodities art bonds other"`
	Description string `json:"description" validate:"max=500"`
	Value       string `json:"value" validate:"required,decimal"`
	TokenSymbol string `json:"tokenSymbol" validate:"required,max=20"`
	TotalSupply string `json:"totalSupply" validate:"required,decimal"`
	Decimals    *int   `json:"decimals,omitempty" validate:"omitempty,min=0,max=36"`
	Owner       string `json:"owner" validate:"required,max=100"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active pending deployed"`
}

// AssetUpdate represents the fields that can be changed on an existing asset.
type AssetUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=real_estate commodities art bonds other"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Value       *string `json:"value,omitempty" validate:"omitempty,decimal"`
	TokenSymbol *string `json:"tokenSymbol,omitempty" validate:"omitempty,max=20"`
	TotalSupply *string `json:"totalSupply,omitempty" validate:"omitempty,decimal"`
	Decimals    *int    `json:"decimals,omitempty" validate:"omitempty,min=0,max=36"`
	Owner       *string `json:"owner,omitempty" validate:"omitempty,max=100"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active pending deployed"`
}
