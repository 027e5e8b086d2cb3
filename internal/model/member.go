package model

import "workstatus-engine/internal/calendar"

// Status is a member's position in the hiring pipeline or work lifecycle.
type Status string

const (
	StatusJobMatching     Status = "job_matching"
	StatusInterviewPrep   Status = "interview_prep"
	StatusInterview       Status = "interview"
	StatusResultWaiting   Status = "result_waiting"
	StatusHired           Status = "hired"
	StatusWorking         Status = "working"
	StatusProjectReleased Status = "project_released"
	StatusContractEnded   Status = "contract_ended"
	StatusInactive        Status = "inactive"
)

// IsPipeline reports whether the status is a hiring-funnel state. Unknown
// statuses are never pipeline.
func (s Status) IsPipeline() bool {
	switch s {
	case StatusJobMatching, StatusInterviewPrep, StatusInterview, StatusResultWaiting, StatusHired:
		return true
	}
	return false
}

type Member struct {
	ID                  string        `json:"id" yaml:"id"`
	Name                string        `json:"name" yaml:"name"`
	Status              Status        `json:"status" yaml:"status"`
	LastWorkStartDate   calendar.Date `json:"lastWorkStartDate" yaml:"lastWorkStartDate"`
	LastWorkEndDate     calendar.Date `json:"lastWorkEndDate" yaml:"lastWorkEndDate"`
	ContractEndDate     calendar.Date `json:"contractEndDate" yaml:"contractEndDate"`
	FirstCounselingDate calendar.Date `json:"firstCounselingDate" yaml:"firstCounselingDate"`
}

// MemberRef is the drill-down entry listed under a report category. Date is
// the date that put the member there.
type MemberRef struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Status Status        `json:"status"`
	Date   calendar.Date `json:"date"`
}

func RefOf(m Member, date calendar.Date) MemberRef {
	return MemberRef{ID: m.ID, Name: m.Name, Status: m.Status, Date: date}
}
