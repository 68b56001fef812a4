package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// bindIncidentReport разбирает тело регистрации инцидента: либо чистый JSON,
// либо multipart-форма с JSON-частью "payload" и файлами "media"
func (h *Handler) bindIncidentReport(c *gin.Context, log *logrus.Entry) (*ReportIncidentRequest, []*models.IncidentMedia, bool) {
	var input ReportIncidentRequest

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		payload := c.PostForm("payload")
		if err := json.Unmarshal([]byte(payload), &input); err != nil {
			log.WithError(err).Warn("Failed to parse multipart payload")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload part"})
			return nil, nil, false
		}
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, nil, false
		}
		form, err := c.MultipartForm()
		if err != nil {
			log.WithError(err).Warn("Failed to parse multipart form")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return nil, nil, false
		}
		return &input, h.saveUploadedFiles(form.File["media"], log), true
	}

	if !h.bindAndValidate(c, log, &input) {
		return nil, nil, false
	}
	return &input, nil, true
}

// @Summary Report a new incident
// @Description Report an animal incident. Accepts JSON or a multipart form with a "payload" JSON part and "media" files.
// @Tags Incidents
// @Accept json
// @Accept mpfd
// @Produce json
// @Param incident body ReportIncidentRequest true "Incident report"
// @Success 201 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	log := h.logger.WithField("method", "reportIncident")

	input, media, ok := h.bindIncidentReport(c, log)
	if !ok {
		return
	}
	incident, err := h.incidentService.ReportIncident(c.Request.Context(), ReportRequestToIncident(*input), media)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, incident)
}

// @Summary List incidents
// @Description List all incidents, optionally filtered by status
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param status query string false "Incident status filter"
// @Success 200 {array} models.Incident
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	var status *models.IncidentStatus
	if raw := c.Query("status"); raw != "" {
		value := models.IncidentStatus(strings.ToUpper(raw))
		status = &value
	}
	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), status)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary List incident summaries
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.IncidentSummary
// @Router /incidents/summaries [get]
func (h *Handler) listIncidentSummaries(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidentSummaries")

	summaries, err := h.incidentService.ListSummaries(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// @Summary List live incident summaries
// @Description List summaries of incidents that are still being worked on
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.IncidentSummary
// @Router /incidents/live [get]
func (h *Handler) listLiveIncidentSummaries(c *gin.Context) {
	log := h.logger.WithField("method", "listLiveIncidentSummaries")

	summaries, err := h.incidentService.ListLiveSummaries(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("incident_id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Get incident case history
// @Description List closed rescue cases of an incident with their teams
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {array} models.CaseHistory
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/history [get]
func (h *Handler) getIncidentHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncidentHistory").WithField("incident_id", id)

	history, err := h.incidentService.GetIncidentHistory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// @Summary Update incident details
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param incident body ReportIncidentRequest true "Updated incident details"
// @Success 200 {object} models.Incident
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("incident_id", id)

	var input ReportIncidentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	model := ReportRequestToIncident(input)
	model.ID = id

	incident, err := h.incidentService.UpdateDetails(c.Request.Context(), model)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Correct incident coordinates
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param location body UpdateIncidentLocationRequest true "New coordinates"
// @Success 200 {object} models.Incident
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/location [patch]
func (h *Handler) updateIncidentLocation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncidentLocation").WithField("incident_id", id)

	var input UpdateIncidentLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	incident, err := h.incidentService.UpdateLocation(c.Request.Context(), id, input.Latitude, input.Longitude)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Initiate an assigned incident
// @Description Transition an ASSIGNED incident to IN_PROGRESS
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 "OK"
// @Failure 409 {object} map[string]string "Incident is not ASSIGNED"
// @Router /incidents/{id}/initiate [put]
func (h *Handler) initiateIncident(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "initiateIncident").WithField("incident_id", id)

	if err := h.incidentService.Initiate(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update incident status
// @Description Explicit status transition. The target status is routed through the same guarded transition as the dedicated endpoints; CLOSED requires a reason.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param status body UpdateIncidentStatusRequest true "Target status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Unknown target status"
// @Failure 409 {object} map[string]string "Transition not allowed from the current status"
// @Router /incidents/{id}/status [put]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("incident_id", id)

	var input UpdateIncidentStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	var err error
	switch models.IncidentStatus(strings.ToUpper(input.Status)) {
	case models.StatusInProgress:
		err = h.incidentService.Initiate(c.Request.Context(), id)
	case models.StatusResolved:
		err = h.incidentService.Resolve(c.Request.Context(), id)
	case models.StatusClosed:
		err = h.incidentService.Close(c.Request.Context(), id, input.Reason)
	case models.StatusOngoing:
		err = h.incidentService.Reactivate(c.Request.Context(), id)
	default:
		log.WithField("status", input.Status).Warn("Unknown target status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown target status"})
		return
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an incident
// @Description Transition an ONGOING incident to RESOLVED
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 "OK"
// @Failure 409 {object} map[string]string "Incident is not ONGOING"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("incident_id", id)

	if err := h.incidentService.Resolve(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Close an incident without a rescue
// @Description Transition a REPORTED incident to CLOSED with a mandatory reason
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param reason body CloseIncidentRequest true "Closing reason"
// @Success 200 "OK"
// @Failure 409 {object} map[string]string "Incident is not REPORTED"
// @Router /incidents/{id}/close [post]
func (h *Handler) closeIncident(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "closeIncident").WithField("incident_id", id)

	var input CloseIncidentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.incidentService.Close(c.Request.Context(), id, input.Reason); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Reactivate a resolved incident
// @Description Transition a RESOLVED incident back to ONGOING
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 "OK"
// @Failure 409 {object} map[string]string "Incident is not RESOLVED"
// @Router /incidents/{id}/reactivate [post]
func (h *Handler) reactivateIncident(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "reactivateIncident").WithField("incident_id", id)

	if err := h.incidentService.Reactivate(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete an incident
// @Description Permanently delete a RESOLVED or CLOSED incident, optionally archiving a summary first
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param archive query bool false "Archive before deleting" default(true)
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Incident is still active"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("incident_id", id)
	archive, _ := strconv.ParseBool(c.DefaultQuery("archive", "true"))

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id, archive); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Express interest in an incident
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 "OK"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/interest [post]
func (h *Handler) expressInterest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "expressInterest").WithField("incident_id", id)

	if err := h.incidentService.ExpressInterest(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Withdraw interest in an incident
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 204 "No Content"
// @Router /incidents/{id}/interest [delete]
func (h *Handler) removeInterest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "removeInterest").WithField("incident_id", id)

	if err := h.incidentService.RemoveInterest(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a single incident media item
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param mediaId path int true "Media item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Media item belongs to another incident"
// @Router /incidents/{id}/media/{mediaId} [delete]
func (h *Handler) deleteIncidentMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	mediaID, ok := pathID(c, "mediaId")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncidentMedia").WithField("incident_id", id)

	if err := h.incidentService.DeleteMediaItem(c.Request.Context(), id, mediaID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete all media of an incident
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 204 "No Content"
// @Router /incidents/{id}/media [delete]
func (h *Handler) deleteAllIncidentMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteAllIncidentMedia").WithField("incident_id", id)

	if err := h.incidentService.DeleteAllMedia(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
