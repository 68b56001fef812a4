package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/service"
)

// @Summary Sign up as a volunteer
// @Description Submit a signup application. The account becomes usable only after admin approval.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body SignUpRequest true "Signup request"
// @Success 201 {object} models.PendingUser
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Username or phone number already taken"
// @Router /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	log := h.logger.WithField("method", "signUp")

	var input SignUpRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	pending, err := h.authService.SignUp(c.Request.Context(), SignUpRequestToPendingUser(input), input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrPhoneRegistered),
			errors.Is(err, service.ErrUsernamePending),
			errors.Is(err, service.ErrPhonePending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.respondError(c, log, err)
		}
		return
	}
	c.JSON(http.StatusCreated, pending)
}

// @Summary Log in
// @Description Authenticate with username and password, returns a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid username or password"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	log := h.logger.WithField("method", "login")

	var input LoginRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

// @Summary Get own profile
// @Description Get the authenticated volunteer's profile and accumulated stats
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/me [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile")

	user, stats, err := h.userService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{User: user, Stats: stats})
}

// @Summary Update availability status
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status body UpdateAvailabilityRequest true "Availability status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid status"
// @Router /users/me/availability [put]
func (h *Handler) updateAvailability(c *gin.Context) {
	log := h.logger.WithField("method", "updateAvailability")

	var input UpdateAvailabilityRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.userService.UpdateAvailability(c.Request.Context(), currentUserID(c), models.AvailabilityStatus(input.Status)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update own location
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body UpdateLocationRequest true "Coordinates"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Coordinates out of range"
// @Router /users/me/location [put]
func (h *Handler) updateUserLocation(c *gin.Context) {
	log := h.logger.WithField("method", "updateUserLocation")

	var input UpdateLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.userService.UpdateLocation(c.Request.Context(), currentUserID(c), input.Latitude, input.Longitude); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update vehicle info
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicle body UpdateVehicleRequest true "Vehicle info"
// @Success 200 "OK"
// @Router /users/me/vehicle [put]
func (h *Handler) updateVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "updateVehicle")

	var input UpdateVehicleRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.userService.UpdateVehicle(c.Request.Context(), currentUserID(c), input.HasVehicle, input.VehicleType); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update medicine box flag
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param flag body UpdateMedicineBoxRequest true "Medicine box flag"
// @Success 200 "OK"
// @Router /users/me/medicine-box [put]
func (h *Handler) updateMedicineBox(c *gin.Context) {
	log := h.logger.WithField("method", "updateMedicineBox")

	var input UpdateMedicineBoxRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.userService.UpdateMedicineBox(c.Request.Context(), currentUserID(c), *input.HasMedicineBox); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update shelter flag
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param flag body UpdateShelterRequest true "Shelter flag"
// @Success 200 "OK"
// @Router /users/me/shelter [put]
func (h *Handler) updateShelter(c *gin.Context) {
	log := h.logger.WithField("method", "updateShelter")

	var input UpdateShelterRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.userService.UpdateShelter(c.Request.Context(), currentUserID(c), *input.CanProvideShelter); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update experience level
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param level body UpdateExperienceRequest true "Experience level"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Unknown level"
// @Router /users/me/experience [put]
func (h *Handler) updateExperience(c *gin.Context) {
	log := h.logger.WithField("method", "updateExperience")

	var input UpdateExperienceRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.userService.UpdateExperienceLevel(c.Request.Context(), currentUserID(c), models.ExperienceLevel(input.ExperienceLevel)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Change own password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwords body ChangePasswordRequest true "Old and new password"
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Current password does not match"
// @Router /users/me/password [put]
func (h *Handler) changePassword(c *gin.Context) {
	log := h.logger.WithField("method", "changePassword")

	var input ChangePasswordRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.userService.ChangePassword(c.Request.Context(), currentUserID(c), input.OldPassword, input.NewPassword); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get the volunteer leaderboard
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaderboardEntry
// @Router /users/leaderboard [get]
func (h *Handler) leaderboard(c *gin.Context) {
	log := h.logger.WithField("method", "leaderboard")

	entries, err := h.userService.Leaderboard(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
