package v1

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pawsome-ngo/rescue-backend/internal/auth"
	"github.com/pawsome-ngo/rescue-backend/internal/config"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/service"
	"github.com/pawsome-ngo/rescue-backend/internal/ws"
	"github.com/sirupsen/logrus"
)

// FileStorage - контракт файлового хранилища загрузок
type FileStorage interface {
	Save(src io.Reader, originalFilename string) (string, error)
	Resolve(filename string) (string, error)
}

// Broadcaster доставляет WebSocket-события адресатам на всех экземплярах
type Broadcaster interface {
	Publish(ctx context.Context, userIDs []int64, message ws.Message) error
}

// Deps - зависимости HTTP-хендлеров
type Deps struct {
	Auth          service.AuthService
	Users         service.UserService
	Admin         service.AdminService
	Incidents     service.IncidentService
	Assignments   service.AssignmentService
	Cases         service.RescueCaseService
	Chats         service.ChatService
	GlobalChat    service.GlobalChatService
	Inventory     service.InventoryService
	Notifications service.NotificationService
	Tokens        *auth.TokenManager
	Storage       FileStorage
	Broadcaster   Broadcaster
	Hub           *ws.Hub
	Logger        *logrus.Logger
	Cfg           *config.Config
}

type Handler struct {
	authService      service.AuthService
	userService      service.UserService
	adminService     service.AdminService
	incidentService  service.IncidentService
	assignService    service.AssignmentService
	caseService      service.RescueCaseService
	chatService      service.ChatService
	globalChat       service.GlobalChatService
	inventoryService service.InventoryService
	notifService     service.NotificationService
	tokens           *auth.TokenManager
	storage          FileStorage
	broadcaster      Broadcaster
	hub              *ws.Hub
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(deps Deps) *Handler {
	return &Handler{
		authService:      deps.Auth,
		userService:      deps.Users,
		adminService:     deps.Admin,
		incidentService:  deps.Incidents,
		assignService:    deps.Assignments,
		caseService:      deps.Cases,
		chatService:      deps.Chats,
		globalChat:       deps.GlobalChat,
		inventoryService: deps.Inventory,
		notifService:     deps.Notifications,
		tokens:           deps.Tokens,
		storage:          deps.Storage,
		broadcaster:      deps.Broadcaster,
		hub:              deps.Hub,
		logger:           deps.Logger,
		validate:         validator.New(),
		cfg:              deps.Cfg,
	}
}

// respondError транслирует сигнальные ошибки сервисов в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает JSON-тело и прогоняет его через валидатор
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// pathID разбирает числовой идентификатор из параметра пути
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// mediaTypeFor определяет тип медиафайла по расширению
func mediaTypeFor(filename string) models.MediaType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4", ".mov", ".webm", ".avi", ".mkv":
		return models.MediaVideo
	case ".mp3", ".wav", ".ogg", ".m4a", ".aac":
		return models.MediaAudio
	default:
		return models.MediaImage
	}
}

// saveUploadedFiles сохраняет файлы multipart-формы в хранилище и возвращает
// записи медиафайлов с присвоенными именами
func (h *Handler) saveUploadedFiles(files []*multipart.FileHeader, log *logrus.Entry) []*models.IncidentMedia {
	media := make([]*models.IncidentMedia, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			log.WithError(err).WithField("filename", fileHeader.Filename).Error("Failed to open uploaded file")
			continue
		}
		filename, err := h.storage.Save(file, fileHeader.Filename)
		file.Close()
		if err != nil {
			log.WithError(err).WithField("filename", fileHeader.Filename).Error("Failed to store uploaded file")
			continue
		}
		media = append(media, &models.IncidentMedia{
			FilePath:  filename,
			MediaType: mediaTypeFor(filename),
		})
	}
	return media
}

// @Summary Serve an uploaded media file
// @Description Serve a previously uploaded media file by its stored name
// @Tags Uploads
// @Produce octet-stream
// @Param filename path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "File not found"
// @Router /uploads/{filename} [get]
func (h *Handler) serveUpload(c *gin.Context) {
	path, err := h.storage.Resolve(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	c.File(path)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
