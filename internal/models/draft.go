package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/ocean_watch/internal/form"
)

// Draft - незавершенная форма сообщения, живет ограниченное время
type Draft struct {
	ID        uuid.UUID             `json:"id"`
	Form      form.HazardReportForm `json:"form"`
	UpdatedAt time.Time             `json:"updated_at"`
}
