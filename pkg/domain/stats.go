package domain

// Stats is the derived dashboard aggregate. It is computed on demand and
// never stored.
type Stats struct {
	// TVL is the total value locked across all assets, formatted as
	// "$<millions, 1 decimal>M".
	TVL string `json:"tvl"`
	// TotalBridges is the number of configured bridges.
	TotalBridges int `json:"totalBridges"`
	// TotalAssets is the number of tokenized assets.
	TotalAssets int `json:"totalAssets"`
	// TotalTransactions is the activity count scaled by a display-only
	// multiplier of 100. It carries no real transaction semantics.
	TotalTransactions int `json:"totalTransactions"`
}
