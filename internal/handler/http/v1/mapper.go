package v1

import (
	"github.com/shenikar/ocean_watch/internal/catalog"
	"github.com/shenikar/ocean_watch/internal/classify"
	"github.com/shenikar/ocean_watch/internal/form"
	"github.com/shenikar/ocean_watch/internal/models"
)

func toRecentReportResponses(reports []catalog.RecentReport) []RecentReportResponse {
	responses := make([]RecentReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = RecentReportResponse{
			RecentReport:    r,
			SeverityVariant: classify.ReportSeverityVariant(r.Severity),
			StatusBadge:     classify.StatusBadge(r.Status),
		}
	}
	return responses
}

func toMarkerResponses(markers []catalog.HazardMarker) []MarkerResponse {
	responses := make([]MarkerResponse, len(markers))
	for i, m := range markers {
		responses[i] = MarkerResponse{
			HazardMarker: m,
			Color:        classify.SeverityDot(m.Severity),
			StatusBadge:  classify.StatusBadge(m.Status),
		}
	}
	return responses
}

func toSocialPostResponses(posts []catalog.SocialPost) []SocialPostResponse {
	responses := make([]SocialPostResponse, len(posts))
	for i, p := range posts {
		responses[i] = SocialPostResponse{
			SocialPost:       p,
			PlatformColor:    classify.PlatformColor(p.Platform),
			SentimentVariant: classify.SentimentVariant(p.Sentiment),
		}
	}
	return responses
}

// ModelToDraftResponse преобразует черновик в DTO. note может быть nil.
func ModelToDraftResponse(draft *models.Draft, note *form.Notification) *DraftResponse {
	return &DraftResponse{
		ID:           draft.ID,
		Form:         draft.Form,
		UpdatedAt:    draft.UpdatedAt,
		Notification: note,
	}
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.HazardReport) *ReportResponse {
	photos := model.Photos
	if photos == nil {
		photos = []form.Attachment{}
	}
	return &ReportResponse{
		ID:              model.ID,
		HazardType:      model.HazardType,
		HazardTypeLabel: form.HazardTypeLabel(model.HazardType),
		Location:        model.Location,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		Severity:        model.Severity,
		SeverityColor:   classify.SeverityDot(model.Severity),
		Description:     model.Description,
		Photos:          photos,
		Status:          model.Status,
		SubmittedAt:     model.SubmittedAt,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(models []*models.HazardReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}
