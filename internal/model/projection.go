package model

import "workstatus-engine/internal/calendar"

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// Basis records which kind of evidence placed a member in a projection.
type Basis string

const (
	BasisDate   Basis = "date"
	BasisStatus Basis = "status"
)

type ProjectedMember struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Status     Status        `json:"status"`
	Date       calendar.Date `json:"date"`
	Confidence Confidence    `json:"confidence"`
	Basis      Basis         `json:"basis"`
}

type CategoryProjection struct {
	Count   int               `json:"count"`
	Members []ProjectedMember `json:"members"`
}

func (c *CategoryProjection) Add(p ProjectedMember) {
	c.Members = append(c.Members, p)
	c.Count = len(c.Members)
}

type MonthlyProjection struct {
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	TotalProjected int                `json:"totalProjected"`
	NewStarting    CategoryProjection `json:"newStarting"`
	Switching      CategoryProjection `json:"switching"`
	ProjectEnding  CategoryProjection `json:"projectEnding"`
	ContractEnding CategoryProjection `json:"contractEnding"`
}

// Delta is the month's net headcount change.
func (m MonthlyProjection) Delta() int {
	return m.NewStarting.Count + m.Switching.Count - m.ProjectEnding.Count - m.ContractEnding.Count
}

type ProjectionReport struct {
	Baseline int                 `json:"baseline"`
	Months   []MonthlyProjection `json:"months"`
}
