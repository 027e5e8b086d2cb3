package model

// Response is the envelope every API endpoint returns.
type Response struct {
	Success  bool                 `json:"success"`
	Data     any                  `json:"data,omitempty"`
	Error    string               `json:"error,omitempty"`
	Metadata *CalculationMetadata `json:"metadata,omitempty"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculationId"`
	CalculationStartedAt   string `json:"calculationStartedAt"`
	CalculationCompletedAt string `json:"calculationCompletedAt"`
	CalculationDurationMs  int64  `json:"calculationDurationMs"`
	RosterSize             int    `json:"rosterSize"`
	Baseline               *int   `json:"baseline,omitempty"`
}
