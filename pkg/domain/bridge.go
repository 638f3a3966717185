package domain

import "time"

// BridgeDeploymentFee is charged for every bridge deployment. It is fixed by
// the platform and never caller-settable.
const BridgeDeploymentFee = "50.00"

// BridgeType selects the transfer trade-off of a configured bridge.
type BridgeType string

const (
	BridgeTypeFast     BridgeType = "fast"
	BridgeTypeSecure   BridgeType = "secure"
	BridgeTypeEconomic BridgeType = "economic"
)

// Valid reports whether the bridge type is one of the known variants.
func (t BridgeType) Valid() bool {
	switch t {
	case BridgeTypeFast, BridgeTypeSecure, BridgeTypeEconomic:
		return true
	}
	return false
}

// BridgeStatus is the deployment lifecycle state of a bridge.
type BridgeStatus string

const (
	BridgeStatusConfigured BridgeStatus = "configured"
	BridgeStatusDeploying  BridgeStatus = "deploying"
	BridgeStatusActive     BridgeStatus = "active"
	BridgeStatusPaused     BridgeStatus = "paused"
)

// Valid reports whether the bridge status is one of the known variants.
func (s BridgeStatus) Valid() bool {
	switch s {
	case BridgeStatusConfigured, BridgeStatusDeploying, BridgeStatusActive,
		BridgeStatusPaused:
		return true
	}
	return false
}

// Bridge represents a configured cross-chain transfer pathway.
type Bridge struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	SourceChain   string       `json:"sourceChain"`
	TargetChain   string       `json:"targetChain"`
	BridgeType    BridgeType   `json:"bridgeType"`
	Status        BridgeStatus `json:"status"`
	Owner         string       `json:"owner"`
	DeploymentFee string       `json:"deploymentFee"`
	CreatedAt     time.Time    `json:"createdAt"`
}
