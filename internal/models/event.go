package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportEvent - событие о новом сообщении для очереди проверки и Kafka
type ReportEvent struct {
	ReportID    uuid.UUID `json:"report_id"`
	HazardType  string    `json:"hazard_type"`
	Severity    string    `json:"severity"`
	Location    string    `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewReportEvent собирает событие из отправленного сообщения
func NewReportEvent(r *HazardReport) ReportEvent {
	return ReportEvent{
		ReportID:    r.ID,
		HazardType:  r.HazardType,
		Severity:    r.Severity,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Description: r.Description,
		SubmittedAt: r.SubmittedAt,
	}
}
