package embed_data

import (
	_ "embed"
)

// DashboardReplacement is the full replacement body for src/dashboard.ts:
// the slimmed-down facade that delegates to ProjectAPI and TaskAPI.
//
//go:embed dashboard.ts
var DashboardReplacement []byte
