package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shenikar/ocean_watch/internal/form"
)

func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Create a report draft
// @Description Start a new hazard report form with every field empty
// @Tags Report
// @Produce json
// @Success 201 {object} DraftResponse
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /report/drafts [post]
func (h *Handler) createDraft(c *gin.Context) {
	log := h.logger.WithField("method", "createDraft")

	draft, err := h.reportService.CreateDraft(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToDraftResponse(draft, nil))
}

// @Summary Get a report draft
// @Tags Report
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid draft ID"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /report/drafts/{id} [get]
func (h *Handler) getDraft(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getDraft").WithField("id", id)

	draft, err := h.reportService.GetDraft(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft, nil))
}

// @Summary Update one draft field
// @Description Replace exactly one field; every other field keeps its value
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param change body UpdateFieldRequest true "Field change"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /report/drafts/{id} [patch]
func (h *Handler) updateDraftField(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateDraftField").WithField("id", id)

	var input UpdateFieldRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.reportService.UpdateDraftField(c.Request.Context(), id, form.Field(input.Field), input.Value)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft, nil))
}

// @Summary Discard a report draft
// @Tags Report
// @Param id path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid draft ID"
// @Router /report/drafts/{id} [delete]
func (h *Handler) discardDraft(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "discardDraft").WithField("id", id)

	if err := h.reportService.DiscardDraft(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Apply a geolocation outcome
// @Description Coordinates are written with six fractional digits. An error outcome leaves the form untouched.
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param outcome body LocationOutcomeRequest true "Coordinates or error"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /report/drafts/{id}/location [post]
func (h *Handler) applyLocation(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "applyLocation").WithField("id", id)

	var input LocationOutcomeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Error != "" {
		log.WithField("client_error", input.Error).Info("Client reported geolocation failure")
		draft, note, err := h.reportService.LocationFailed(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelToDraftResponse(draft, &note))
		return
	}

	pos := form.Position{Latitude: *input.Latitude, Longitude: *input.Longitude}
	draft, note, err := h.reportService.ApplyLocation(c.Request.Context(), id, pos)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft, &note))
}

// @Summary Attach photos to a draft
// @Description Records file descriptors only; files are not stored. At most 10 files, 5MB each.
// @Tags Report
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param photos formData file true "Photos"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "No files or limits exceeded"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /report/drafts/{id}/photos [post]
func (h *Handler) addPhotos(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "addPhotos").WithField("id", id)

	mf, err := c.MultipartForm()
	if err != nil || len(mf.File["photos"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one file in field 'photos' is required"})
		return
	}

	attachments := make([]form.Attachment, 0, len(mf.File["photos"]))
	for _, fh := range mf.File["photos"] {
		attachments = append(attachments, form.Attachment{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
	}

	draft, err := h.reportService.AddPhotos(c.Request.Context(), id, attachments)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft, nil))
}

// @Summary Submit a draft
// @Description Stores and forwards the report for review whatever its content, then resets the draft form
// @Tags Report
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} map[string]string "Invalid draft ID"
// @Failure 404 {object} map[string]string "Draft not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /report/drafts/{id}/submit [post]
func (h *Handler) submitDraft(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "submitDraft").WithField("id", id)

	report, draft, note, err := h.reportService.SubmitDraft(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SubmitResponse{
		Report:       ModelToReportResponse(report),
		Draft:        ModelToDraftResponse(draft, nil),
		Notification: note,
	})
}

// @Summary Get a list of submitted reports
// @Description Get a paginated list of submitted hazard reports. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	reports, err := h.reportService.ListReports(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Description Get a single submitted report by its ID. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, ok := parseID(c, "report")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get report statistics
// @Description Count of reports submitted within STATS_TIME_WINDOW_MINUTES by severity. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.reportService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		WindowMinutes: stats.WindowMinutes,
		Total:         stats.Total,
		BySeverity:    stats.BySeverity,
	})
}
