package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field - имя редактируемого поля формы
type Field string

const (
	FieldHazardType  Field = "hazard_type"
	FieldLocation    Field = "location"
	FieldLatitude    Field = "latitude"
	FieldLongitude   Field = "longitude"
	FieldSeverity    Field = "severity"
	FieldDescription Field = "description"
)

const (
	MaxPhotos     = 10
	MaxPhotoBytes = 5 << 20
)

var (
	ErrUnknownField  = errors.New("unknown form field")
	ErrTooManyPhotos = fmt.Errorf("at most %d photos can be attached", MaxPhotos)
	ErrPhotoTooLarge = errors.New("photo exceeds 5MB")
)

// Attachment описывает прикрепленный файл. Сами файлы никуда не загружаются.
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Position - координаты, полученные от службы геолокации клиента
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HazardReportForm - состояние формы сообщения об опасности
type HazardReportForm struct {
	HazardType  string       `json:"hazard_type" form:"hazard_type" validate:"required,hazard_type"`
	Location    string       `json:"location" form:"location" validate:"max=255"`
	Latitude    string       `json:"latitude" form:"latitude" validate:"omitempty,decimal_latitude"`
	Longitude   string       `json:"longitude" form:"longitude" validate:"omitempty,decimal_longitude"`
	Severity    string       `json:"severity" form:"severity" validate:"required,severity"`
	Description string       `json:"description" form:"description" validate:"required,max=4000"`
	Photos      []Attachment `json:"photos" form:"-" validate:"max=10"`
}

// Empty возвращает начальное (пустое) состояние формы
func Empty() HazardReportForm {
	return HazardReportForm{Photos: []Attachment{}}
}

// IsEmpty сообщает, совпадает ли форма с начальным состоянием
func (f HazardReportForm) IsEmpty() bool {
	return f.HazardType == "" &&
		f.Location == "" &&
		f.Latitude == "" &&
		f.Longitude == "" &&
		f.Severity == "" &&
		f.Description == "" &&
		len(f.Photos) == 0
}

// Set заменяет значение одного поля, остальные поля не меняются
func (f *HazardReportForm) Set(field Field, value string) error {
	switch field {
	case FieldHazardType:
		f.HazardType = value
	case FieldLocation:
		f.Location = value
	case FieldLatitude:
		f.Latitude = value
	case FieldLongitude:
		f.Longitude = value
	case FieldSeverity:
		f.Severity = value
	case FieldDescription:
		f.Description = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// ApplyPosition записывает координаты с точностью 6 знаков после запятой
func (f *HazardReportForm) ApplyPosition(p Position) Notification {
	f.Latitude = FormatCoordinate(p.Latitude)
	f.Longitude = FormatCoordinate(p.Longitude)
	return Success(msgLocationCaptured, "")
}

// LocationFailed - исход неудачного запроса геолокации. Форма не меняется.
func (f *HazardReportForm) LocationFailed() Notification {
	return Error(msgLocationFailed, "")
}

// AddPhoto добавляет описание вложения с учетом ограничений по количеству и размеру
func (f *HazardReportForm) AddPhoto(a Attachment) error {
	if len(f.Photos) >= MaxPhotos {
		return ErrTooManyPhotos
	}
	if a.Size > MaxPhotoBytes {
		return fmt.Errorf("%w: %s", ErrPhotoTooLarge, a.FileName)
	}
	f.Photos = append(f.Photos, a)
	return nil
}

// Reset возвращает все поля к начальным значениям
func (f *HazardReportForm) Reset() {
	*f = Empty()
}

// Submit возвращает отправленное содержимое, уведомление об успехе и сбрасывает форму
func (f *HazardReportForm) Submit() (HazardReportForm, Notification) {
	submitted := *f
	submitted.Photos = append([]Attachment{}, f.Photos...)
	f.Reset()
	return submitted, Success(msgSubmitted, msgSubmittedDescription)
}

// Coordinates разбирает строковые координаты. Пустые значения дают nil.
func (f HazardReportForm) Coordinates() (lat, lon *float64, err error) {
	lat, err = parseCoordinate(f.Latitude, 90)
	if err != nil {
		return nil, nil, fmt.Errorf("latitude: %w", err)
	}
	lon, err = parseCoordinate(f.Longitude, 180)
	if err != nil {
		return nil, nil, fmt.Errorf("longitude: %w", err)
	}
	return lat, lon, nil
}

// FormatCoordinate форматирует координату с ровно шестью знаками после запятой
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func parseCoordinate(raw string, limit float64) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q", raw)
	}
	if math.IsNaN(v) || v < -limit || v > limit {
		return nil, fmt.Errorf("value %v out of range", v)
	}
	return &v, nil
}
