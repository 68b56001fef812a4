package models

import (
	"time"
)

// AnimalType - вид животного в инциденте
type AnimalType string

const (
	AnimalDog    AnimalType = "DOG"
	AnimalCat    AnimalType = "CAT"
	AnimalCattle AnimalType = "CATTLE"
	AnimalBird   AnimalType = "BIRD"
	AnimalOther  AnimalType = "OTHER"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	StatusReported   IncidentStatus = "REPORTED"
	StatusAssigned   IncidentStatus = "ASSIGNED"
	StatusInProgress IncidentStatus = "IN_PROGRESS"
	StatusOngoing    IncidentStatus = "ONGOING"
	StatusResolved   IncidentStatus = "RESOLVED"
	StatusClosed     IncidentStatus = "CLOSED"
)

// MediaType - тип медиафайла
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
	MediaAudio MediaType = "AUDIO"
)

type Incident struct {
	ID            int64          `json:"id"`
	InformerName  string         `json:"informer_name"`
	ContactNumber string         `json:"contact_number"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	Location      string         `json:"location,omitempty"`
	AnimalType    AnimalType     `json:"animal_type"`
	Description   string         `json:"description,omitempty"`
	ClosingReason *string        `json:"closing_reason,omitempty"`
	CaseCount     int            `json:"case_count"`
	Status        IncidentStatus `json:"status"`
	ReportedAt    time.Time      `json:"reported_at"`
	LastUpdated   time.Time      `json:"last_updated"`

	MediaFiles      []*IncidentMedia  `json:"media_files,omitempty"`
	InterestedUsers []*InterestedUser `json:"interested_users,omitempty"`
}

// IncidentMedia - медиафайл, прикрепленный к инциденту
type IncidentMedia struct {
	ID         int64     `json:"id"`
	IncidentID int64     `json:"incident_id"`
	CaseID     *int64    `json:"case_id,omitempty"`
	FilePath   string    `json:"file_path"`
	MediaType  MediaType `json:"media_type"`
}

// InterestedUser - волонтер, выразивший интерес к инциденту
type InterestedUser struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
}

// IncidentSummary - краткая сводка по инциденту для списков
type IncidentSummary struct {
	ID               int64          `json:"id"`
	InformerName     string         `json:"informer_name"`
	Location         string         `json:"location,omitempty"`
	AnimalType       AnimalType     `json:"animal_type"`
	Status           IncidentStatus `json:"status"`
	CaseCount        int            `json:"case_count"`
	LastUpdated      time.Time      `json:"last_updated"`
	AssignedByUserID *int64         `json:"assigned_by_user_id,omitempty"`
}

// IncidentArchive - денормализованный снимок инцидента перед удалением
type IncidentArchive struct {
	ID                 int64     `json:"id"`
	OriginalIncidentID int64     `json:"original_incident_id"`
	InformerName       string    `json:"informer_name"`
	ContactNumber      string    `json:"contact_number"`
	Location           string    `json:"location,omitempty"`
	AnimalType         string    `json:"animal_type"`
	Description        string    `json:"description,omitempty"`
	FinalStatus        string    `json:"final_status"`
	ClosingReason      *string   `json:"closing_reason,omitempty"`
	ResolutionNotes    string    `json:"resolution_notes,omitempty"`
	InvolvedMembers    string    `json:"involved_members,omitempty"`
	ReportedAt         time.Time `json:"reported_at"`
	ArchivedAt         time.Time `json:"archived_at"`
}
