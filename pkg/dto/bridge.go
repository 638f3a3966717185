package dto

// BridgeCreate represents the data needed to configure a new bridge. The
// deployment fee is fixed by the platform and deliberately absent.
type BridgeCreate struct {
	Name        string `json:"name" validate:"required,max=100"`
	SourceChain string `json:"sourceChain" validate:"required,max=100"`
	TargetChain string `json:"targetChain" validate:"required,max=100"`
	BridgeType  string `json:"bridgeType" validate:"required,oneof=fast secure economic"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=configured deploying active paused"`
	Owner       string `json:"owner" validate:"required,max=100"`
}

// BridgeUpdate represents the fields that can be changed on an existing
// bridge.
type BridgeUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	SourceChain *string `json:"sourceChain,omitempty" validate:"omitempty,max=100"`
	TargetChain *string `json:"targetChain,omitempty" validate:"omitempty,max=100"`
	BridgeType  *string `json:"bridgeType,omitempty" validate:"omitempty,oneof=fast secure economic"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=configured deploying active paused"`
	Owner       *string `json:"owner,omitempty" validate:"omitempty,max=100"`
}
