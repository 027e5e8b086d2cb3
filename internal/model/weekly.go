package model

import "workstatus-engine/internal/calendar"

type WeeklyClassificationResult struct {
	Week calendar.WeekWindow `json:"week"`

	TotalWorkers      int `json:"totalWorkers"`
	NewStarted        int `json:"newStarted"`
	Switching         int `json:"switching"`
	ProjectEnded      int `json:"projectEnded"`
	ContractEnded     int `json:"contractEnded"`
	CounselingStarted int `json:"counselingStarted"`
	TotalStarted      int `json:"totalStarted"`
	TotalEnded        int `json:"totalEnded"`

	NewStartedMembers        []MemberRef `json:"newStartedMembers"`
	SwitchingMembers         []MemberRef `json:"switchingMembers"`
	ProjectEndedMembers      []MemberRef `json:"projectEndedMembers"`
	ContractEndedMembers     []MemberRef `json:"contractEndedMembers"`
	CounselingStartedMembers []MemberRef `json:"counselingStartedMembers"`
}

type WeeklyReport struct {
	Year         int                          `json:"year"`
	Month        int                          `json:"month"`
	SelectedWeek int                          `json:"selectedWeek"`
	WeekDetails  []WeeklyClassificationResult `json:"weekDetails"`
}
