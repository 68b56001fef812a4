package models

import (
	"time"
)

type Team struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	MemberHash string `json:"-"`
	CaseCount  int    `json:"case_count"`

	Members []*TeamMember `json:"members,omitempty"`
}

type TeamMember struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RescueCase - выезд команды по инциденту
type RescueCase struct {
	ID               int64      `json:"id"`
	IncidentID       int64      `json:"incident_id"`
	TeamID           int64      `json:"team_id"`
	ChatGroupID      *string    `json:"chat_group_id,omitempty"`
	AssignedByUserID int64      `json:"assigned_by_user_id"`
	IsActive         bool       `json:"is_active"`
	ResolutionNotes  *string    `json:"resolution_notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
}

// AvailableVolunteer - кандидат в команду с признаками для ранжирования
type AvailableVolunteer struct {
	UserID                int64           `json:"user_id"`
	FirstName             string          `json:"first_name"`
	HasVehicle            bool            `json:"has_vehicle"`
	HasMedicineBox        bool            `json:"has_medicine_box"`
	ExperienceLevel       ExperienceLevel `json:"experience_level"`
	HasShownInterest      bool            `json:"has_shown_interest"`
	IsEngagedInActiveCase bool            `json:"is_engaged_in_active_case"`
	DistanceFromIncident  *float64        `json:"distance_from_incident,omitempty"`
	HasPreviouslyWorked   bool            `json:"has_previously_worked_on_incident"`
}

// TeamDetails - информация о команде активного выезда
type TeamDetails struct {
	TeamName   string        `json:"team_name"`
	AssignedBy string        `json:"assigned_by,omitempty"`
	Members    []*TeamMember `json:"team_members"`
}

// AssignedTeam - результат назначения команды на инцидент
type AssignedTeam struct {
	CaseID      int64         `json:"case_id"`
	IncidentID  int64         `json:"incident_id"`
	TeamName    string        `json:"team_name"`
	ChatGroupID string        `json:"chat_group_id"`
	Members     []*TeamMember `json:"team_members"`
}

// CaseCompletionDetails - данные закрытия выезда
type CaseCompletionDetails struct {
	ResolutionNotes string   `json:"resolution_notes"`
	FinalLatitude   *float64 `json:"final_latitude,omitempty"`
	FinalLongitude  *float64 `json:"final_longitude,omitempty"`
}

// CaseReward - награда участника за закрытый выезд
type CaseReward struct {
	Points int
	Hearts int
}

// CaseHistory - закрытый выезд в истории инцидента
type CaseHistory struct {
	CaseID          int64         `json:"case_id"`
	TeamName        string        `json:"team_name"`
	AssignedBy      string        `json:"assigned_by,omitempty"`
	ResolutionNotes *string       `json:"resolution_notes,omitempty"`
	ClosedAt        *time.Time    `json:"closed_at,omitempty"`
	Members         []*TeamMember `json:"team_members"`
}
