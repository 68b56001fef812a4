package v1

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
)

// @Summary List ranked available volunteers for an incident
// @Description List available volunteers ordered by assignment priority
// @Tags Assignment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {array} models.AvailableVolunteer
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/volunteers [get]
func (h *Handler) listAvailableVolunteers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listAvailableVolunteers").WithField("incident_id", id)

	volunteers, err := h.assignService.GetAvailableVolunteers(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, volunteers)
}

// @Summary Assign a team to an incident
// @Description Assign the selected volunteers as a team, replacing any previous active case
// @Tags Assignment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param team body AssignTeamRequest true "Team member user IDs"
// @Success 201 {object} models.AssignedTeam
// @Failure 404 {object} map[string]string "Incident or user not found"
// @Router /incidents/{id}/assign [post]
func (h *Handler) assignTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "assignTeam").WithField("incident_id", id)

	var input AssignTeamRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	assigned, err := h.assignService.AssignTeam(c.Request.Context(), id, input.UserIDs, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, assigned)
}

// @Summary Get the team of the active case
// @Tags Assignment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} models.TeamDetails
// @Failure 404 {object} map[string]string "No active case for this incident"
// @Router /incidents/{id}/team [get]
func (h *Handler) getTeamDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getTeamDetails").WithField("incident_id", id)

	details, err := h.assignService.GetTeamDetails(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// @Summary List first-aid items carried by the active team
// @Description Distinct item names across the kits of team members who carry a medicine box
// @Tags Assignment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {array} string
// @Failure 404 {object} map[string]string "No active case for this incident"
// @Router /incidents/{id}/team/kit-items [get]
func (h *Handler) getTeamKitItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getTeamKitItems").WithField("incident_id", id)

	items, err := h.assignService.GetTeamKitItems(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List own active cases
// @Description List incidents the authenticated volunteer has an active rescue case for
// @Tags Cases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Incident
// @Router /cases/my [get]
func (h *Handler) getMyCases(c *gin.Context) {
	log := h.logger.WithField("method", "getMyCases")

	incidents, err := h.caseService.GetMyCases(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Confirm case initiation
// @Description Confirm the start of a rescue with the actually departing members. A strict subset rebuilds the team, chat and case.
// @Tags Cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param participants body ConfirmInitiationRequest true "Participating member user IDs"
// @Success 200 "OK"
// @Failure 403 {object} map[string]string "Initiator is not in the assigned team"
// @Failure 409 {object} map[string]string "Incident is not ASSIGNED"
// @Router /incidents/{id}/initiate [post]
func (h *Handler) confirmInitiation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "confirmInitiation").WithField("incident_id", id)

	var input ConfirmInitiationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.caseService.ConfirmInitiation(c.Request.Context(), id, input.ParticipatingUserIDs, currentUserID(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Complete the active rescue case
// @Description Close the active case: apply rewards, record resolution notes, attach media. Accepts JSON or a multipart form with a "payload" JSON part and "media" files.
// @Tags Cases
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param details body CompleteCaseRequest true "Completion details"
// @Success 200 "OK"
// @Failure 404 {object} map[string]string "No active case for this incident"
// @Router /incidents/{id}/complete [post]
func (h *Handler) completeCase(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "completeCase").WithField("incident_id", id)

	var details CompleteCaseRequest
	var media []*models.IncidentMedia

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := json.Unmarshal([]byte(c.PostForm("payload")), &details); err != nil {
			log.WithError(err).Warn("Failed to parse multipart payload")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload part"})
			return
		}
		if err := h.validate.Struct(details); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if form, err := c.MultipartForm(); err == nil {
			media = h.saveUploadedFiles(form.File["media"], log)
		}
	} else if !h.bindAndValidate(c, log, &details) {
		return
	}

	completion := &models.CaseCompletionDetails{
		ResolutionNotes: details.ResolutionNotes,
		FinalLatitude:   details.FinalLatitude,
		FinalLongitude:  details.FinalLongitude,
	}
	if err := h.caseService.CloseCase(c.Request.Context(), id, completion, media); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}
