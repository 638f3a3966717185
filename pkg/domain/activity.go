package domain

import "time"

// ActivityType classifies an entry in the append-only activity log.
type ActivityType string

const (
	ActivityAssetCreated   ActivityType = "asset_created"
	ActivityBridgeDeployed ActivityType = "bridge_deployed"
	ActivityTokenMinted    ActivityType = "token_minted"
	ActivityTransfer       ActivityType = "transfer"
)

// Valid reports whether the activity type is one of the known variants.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityAssetCreated, ActivityBridgeDeployed, ActivityTokenMinted,
		ActivityTransfer:
		return true
	}
	return false
}

// Activity is an immutable log entry recording a creation or transfer event.
// Amount is a free-text signed display amount, e.g. "+$15,000".
type Activity struct {
	ID          int          `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Amount      string       `json:"amount,omitempty"`
	Owner       string       `json:"owner"`
	CreatedAt   time.Time    `json:"createdAt"`
}
