package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/ocean_watch/internal/form"
)

var (
	ErrReportNotFound = errors.New("hazard report not found")
	ErrDraftNotFound  = errors.New("report draft not found")
	ErrInvalidReport  = errors.New("invalid hazard report")
)

const ReportStatusSubmitted = "submitted"

// HazardReport - отправленное сообщение об опасности
type HazardReport struct {
	ID          uuid.UUID         `json:"id"`
	HazardType  string            `json:"hazard_type"`
	Location    string            `json:"location"`
	Latitude    *float64          `json:"latitude,omitempty"`
	Longitude   *float64          `json:"longitude,omitempty"`
	Severity    string            `json:"severity"`
	Description string            `json:"description"`
	Photos      []form.Attachment `json:"photos"`
	Status      string            `json:"status"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// ReportStats - сводка по отчетам за временное окно
type ReportStats struct {
	WindowMinutes int            `json:"window_minutes"`
	Total         int            `json:"total"`
	BySeverity    map[string]int `json:"by_severity"`
}
