package form

// Level - тип всплывающего уведомления
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

const (
	msgSubmitted            = "Hazard report submitted successfully!"
	msgSubmittedDescription = "Your report has been sent to INCOIS for immediate review."
	msgLocationCaptured     = "Location captured successfully!"
	msgLocationFailed       = "Unable to get location. Please enter manually."
)

// Notification - кратковременное уведомление для пользователя
type Notification struct {
	Level       Level  `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func Success(title, description string) Notification {
	return Notification{Level: LevelSuccess, Title: title, Description: description}
}

func Error(title, description string) Notification {
	return Notification{Level: LevelError, Title: title, Description: description}
}
