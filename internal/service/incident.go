package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	ListAll(ctx context.Context) ([]*models.Incident, error)
	ListByStatus(ctx context.Context, status models.IncidentStatus) ([]*models.Incident, error)
	ListSummaries(ctx context.Context, excludeStatuses []models.IncidentStatus) ([]*models.IncidentSummary, error)
	UpdateDetails(ctx context.Context, incident *models.Incident) error
	UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) error
	UpdateStatus(ctx context.Context, id int64, status models.IncidentStatus, closingReason *string) error
	IncrementCaseCount(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	GetCaseChatGroupIDs(ctx context.Context, incidentID int64) ([]string, error)
	ListCaseHistory(ctx context.Context, incidentID int64) ([]*models.CaseHistory, error)
	CreateArchive(ctx context.Context, archive *models.IncidentArchive) error
	AddMedia(ctx context.Context, media *models.IncidentMedia) error
	GetMediaByID(ctx context.Context, mediaID int64) (*models.IncidentMedia, error)
	ListMediaByIncident(ctx context.Context, incidentID int64) ([]*models.IncidentMedia, error)
	DeleteMedia(ctx context.Context, mediaID int64) error
	DeleteAllMedia(ctx context.Context, incidentID int64) error
	AddInterest(ctx context.Context, incidentID, userID int64) error
	RemoveInterest(ctx context.Context, incidentID, userID int64) error
	RemoveAllInterests(ctx context.Context, incidentID int64) error
}

// MediaStorage - контракт удаления файлов из локального хранилища
type MediaStorage interface {
	Delete(filename string) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, incident *models.Incident, media []*models.IncidentMedia) (*models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	ListIncidents(ctx context.Context, status *models.IncidentStatus) ([]*models.Incident, error)
	ListSummaries(ctx context.Context) ([]*models.IncidentSummary, error)
	ListLiveSummaries(ctx context.Context) ([]*models.IncidentSummary, error)
	GetIncidentHistory(ctx context.Context, id int64) ([]*models.CaseHistory, error)
	UpdateDetails(ctx context.Context, incident *models.Incident) (*models.Incident, error)
	UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) (*models.Incident, error)
	Initiate(ctx context.Context, id int64) error
	Resolve(ctx context.Context, id int64) error
	Close(ctx context.Context, id int64, reason string) error
	Reactivate(ctx context.Context, id int64) error
	DeleteIncident(ctx context.Context, id int64, shouldArchive bool) error
	ExpressInterest(ctx context.Context, incidentID, userID int64) error
	RemoveInterest(ctx context.Context, incidentID, userID int64) error
	DeleteMediaItem(ctx context.Context, incidentID, mediaID int64) error
	DeleteAllMedia(ctx context.Context, incidentID int64) error
}

// ChatTeardown - контракт удаления чата со всеми его данными
type ChatTeardown interface {
	DeleteChatGroupAndData(ctx context.Context, chatGroupID string) error
}

type incidentService struct {
	repo     IncidentRepository
	users    UserRepository
	chats    ChatTeardown
	storage  MediaStorage
	notifier Notifier
	logger   *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, users UserRepository, chats ChatTeardown, storage MediaStorage, notifier Notifier, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:     repo,
		users:    users,
		chats:    chats,
		storage:  storage,
		notifier: notifier,
		logger:   logger,
	}
}

// ReportIncident регистрирует новый инцидент с приложенными медиафайлами и
// асинхронно уведомляет всех доступных волонтеров
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident, media []*models.IncidentMedia) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "ReportIncident",
		"informer_name": incident.InformerName,
	})
	log.Info("Attempting to report a new incident")

	incident.Status = models.StatusReported
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	for _, item := range media {
		item.IncidentID = incident.ID
		if err := s.repo.AddMedia(ctx, item); err != nil {
			log.WithError(err).WithField("file_path", item.FilePath).Error("Failed to save incident media record")
		}
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")

	// Рассылка уведомлений не задерживает ответ репортеру
	go s.notifyAvailableVolunteers(context.WithoutCancel(ctx), incident)

	return s.GetIncident(ctx, incident.ID)
}

// notifyAvailableVolunteers уведомляет волонтеров со статусом AVAILABLE о новом инциденте
func (s *incidentService) notifyAvailableVolunteers(ctx context.Context, incident *models.Incident) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "notifyAvailableVolunteers",
		"incident_id": incident.ID,
	})

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load users for new incident notification")
		return
	}

	location := incident.Location
	if location == "" {
		location = "Unknown Location"
	}
	message := fmt.Sprintf("New %s incident (#%d) reported near '%s'. Reported by %s.",
		incident.AnimalType, incident.ID, location, incident.InformerName)

	count := 0
	for _, user := range users {
		if user.AvailabilityStatus != models.Available {
			continue
		}
		status := incident.Status
		s.notifier.Notify(ctx, user.ID, models.NotificationIncident, &status, message, &incident.ID, nil)
		count++
	}
	if count > 0 {
		log.WithField("recipient_count", count).Info("Sent new incident notification to available users")
	} else {
		log.Info("No available users found to notify for new incident")
	}
}

// GetIncident возвращает инцидент с медиафайлами и заинтересованными волонтерами
func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает инциденты, опционально фильтруя по статусу
func (s *incidentService) ListIncidents(ctx context.Context, status *models.IncidentStatus) ([]*models.Incident, error) {
	var (
		incidents []*models.Incident
		err       error
	)
	if status != nil {
		incidents, err = s.repo.ListByStatus(ctx, *status)
	} else {
		incidents, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// ListSummaries возвращает краткие карточки всех инцидентов
func (s *incidentService) ListSummaries(ctx context.Context) ([]*models.IncidentSummary, error) {
	summaries, err := s.repo.ListSummaries(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incident summaries: %w", err)
	}
	return summaries, nil
}

// ListLiveSummaries возвращает карточки инцидентов, по которым еще идет работа
func (s *incidentService) ListLiveSummaries(ctx context.Context) ([]*models.IncidentSummary, error) {
	excluded := []models.IncidentStatus{models.StatusResolved, models.StatusClosed}
	summaries, err := s.repo.ListSummaries(ctx, excluded)
	if err != nil {
		return nil, fmt.Errorf("service: could not list live incident summaries: %w", err)
	}
	return summaries, nil
}

// GetIncidentHistory возвращает историю завершенных выездов по инциденту
func (s *incidentService) GetIncidentHistory(ctx context.Context, id int64) ([]*models.CaseHistory, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	history, err := s.repo.ListCaseHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident history: %w", err)
	}
	return history, nil
}

// UpdateDetails обновляет описательные поля инцидента
func (s *incidentService) UpdateDetails(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateDetails",
		"incident_id": incident.ID,
	})

	existing, err := s.repo.GetByID(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	existing.InformerName = incident.InformerName
	existing.ContactNumber = incident.ContactNumber
	existing.AnimalType = incident.AnimalType
	existing.Description = incident.Description
	existing.Location = incident.Location
	existing.Latitude = incident.Latitude
	existing.Longitude = incident.Longitude

	if err := s.repo.UpdateDetails(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}
	log.Info("Incident updated successfully")
	return s.GetIncident(ctx, incident.ID)
}

// UpdateLocation корректирует координаты инцидента.
// Точечная правка координат не считается изменением инцидента,
// поэтому отметка последнего обновления остается прежней.
func (s *incidentService) UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) (*models.Incident, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("service: coordinates out of range: %w", ErrValidation)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if err := s.repo.UpdateLocation(ctx, id, latitude, longitude); err != nil {
		return nil, fmt.Errorf("service: could not update incident location: %w", err)
	}
	return s.GetIncident(ctx, id)
}

// Initiate переводит инцидент из ASSIGNED в IN_PROGRESS
func (s *incidentService) Initiate(ctx context.Context, id int64) error {
	return s.transition(ctx, id, models.StatusAssigned, models.StatusInProgress, nil,
		"only an ASSIGNED case can be initiated")
}

// Resolve переводит инцидент из ONGOING в RESOLVED
func (s *incidentService) Resolve(ctx context.Context, id int64) error {
	return s.transition(ctx, id, models.StatusOngoing, models.StatusResolved, nil,
		"only an ONGOING case can be resolved")
}

// Close закрывает инцидент без выезда с указанием причины
func (s *incidentService) Close(ctx context.Context, id int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("service: closing reason is required: %w", ErrValidation)
	}
	return s.transition(ctx, id, models.StatusReported, models.StatusClosed, &reason,
		"only a REPORTED case can be closed")
}

// Reactivate возвращает решенный инцидент в работу, снимая причину закрытия
func (s *incidentService) Reactivate(ctx context.Context, id int64) error {
	return s.transition(ctx, id, models.StatusResolved, models.StatusOngoing, nil,
		"only a RESOLVED incident can be reactivated")
}

// transition выполняет переход статуса с проверкой текущего состояния
func (s *incidentService) transition(ctx context.Context, id int64, from, to models.IncidentStatus, closingReason *string, guardMessage string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "transition",
		"incident_id": id,
		"to_status":   to,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.Status != from {
		return fmt.Errorf("service: %s: %w", guardMessage, ErrInvalidState)
	}

	if err := s.repo.UpdateStatus(ctx, id, to, closingReason); err != nil {
		log.WithError(err).Error("Failed to update incident status")
		return fmt.Errorf("service: could not update incident status: %w", err)
	}
	log.Info("Incident status updated")
	return nil
}

// DeleteIncident безвозвратно удаляет инцидент со всеми медиафайлами,
// отметками интереса, выездами и их чатами. Перед удалением инцидент
// может быть сохранен в архив.
func (s *incidentService) DeleteIncident(ctx context.Context, id int64, shouldArchive bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.Status != models.StatusResolved && incident.Status != models.StatusClosed {
		return fmt.Errorf("service: only RESOLVED or CLOSED incidents can be deleted: %w", ErrInvalidState)
	}

	if shouldArchive {
		// Провал архивации не останавливает удаление
		if err := s.archiveIncident(ctx, incident); err != nil {
			log.WithError(err).Error("Failed to archive incident. Proceeding with deletion.")
		}
	}

	if err := s.DeleteAllMedia(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident media")
	}
	if err := s.repo.RemoveAllInterests(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete interest records")
	}

	chatGroupIDs, err := s.repo.GetCaseChatGroupIDs(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load chat groups for incident")
	}
	for _, chatGroupID := range chatGroupIDs {
		log.WithField("chat_group_id", chatGroupID).Info("Deleting chat data for chat group")
		if err := s.chats.DeleteChatGroupAndData(ctx, chatGroupID); err != nil {
			log.WithError(err).WithField("chat_group_id", chatGroupID).Error("Error cleaning up chat group")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete incident: %w", err)
	}
	log.Info("Successfully hard-deleted incident")
	return nil
}

// archiveIncident собирает сводку по инциденту и сохраняет ее в архив
func (s *incidentService) archiveIncident(ctx context.Context, incident *models.Incident) error {
	history, err := s.repo.ListCaseHistory(ctx, incident.ID)
	if err != nil {
		return fmt.Errorf("service: could not load case history for archive: %w", err)
	}

	memberNames := make(map[string]bool)
	var resolutionNotes []string
	for _, entry := range history {
		if entry.ResolutionNotes != nil && *entry.ResolutionNotes != "" {
			resolutionNotes = append(resolutionNotes, *entry.ResolutionNotes)
		}
		for _, member := range entry.Members {
			memberNames[member.FirstName+" "+member.LastName] = true
		}
	}
	names := make([]string, 0, len(memberNames))
	for name := range memberNames {
		names = append(names, name)
	}

	archive := &models.IncidentArchive{
		OriginalIncidentID: incident.ID,
		InformerName:       incident.InformerName,
		ContactNumber:      incident.ContactNumber,
		Location:           incident.Location,
		AnimalType:         string(incident.AnimalType),
		Description:        incident.Description,
		FinalStatus:        string(incident.Status),
		ReportedAt:         incident.ReportedAt,
		ClosingReason:      incident.ClosingReason,
		ResolutionNotes:    strings.Join(resolutionNotes, "\n---\n"),
		InvolvedMembers:    strings.Join(names, ", "),
	}
	if err := s.repo.CreateArchive(ctx, archive); err != nil {
		return fmt.Errorf("service: could not save incident archive: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "archiveIncident",
		"incident_id": incident.ID,
	}).Info("Successfully archived incident")
	return nil
}

// ExpressInterest отмечает волонтера заинтересованным в инциденте
func (s *incidentService) ExpressInterest(ctx context.Context, incidentID, userID int64) error {
	if _, err := s.repo.GetByID(ctx, incidentID); err != nil {
		return fmt.Errorf("service: could not get incident: %w", err)
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return fmt.Errorf("service: could not get user: %w", err)
	}
	if err := s.repo.AddInterest(ctx, incidentID, userID); err != nil {
		return fmt.Errorf("service: could not express interest: %w", err)
	}
	return nil
}

// RemoveInterest снимает отметку интереса волонтера
func (s *incidentService) RemoveInterest(ctx context.Context, incidentID, userID int64) error {
	if err := s.repo.RemoveInterest(ctx, incidentID, userID); err != nil {
		return fmt.Errorf("service: could not remove interest: %w", err)
	}
	return nil
}

// DeleteMediaItem удаляет один медиафайл инцидента вместе с файлом на диске
func (s *incidentService) DeleteMediaItem(ctx context.Context, incidentID, mediaID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteMediaItem",
		"incident_id": incidentID,
		"media_id":    mediaID,
	})

	media, err := s.repo.GetMediaByID(ctx, mediaID)
	if err != nil {
		return fmt.Errorf("service: could not get media item: %w", err)
	}
	if media.IncidentID != incidentID {
		return fmt.Errorf("service: media item does not belong to the specified incident: %w", ErrValidation)
	}

	// Файл на диске может уже отсутствовать, запись в бд удаляем в любом случае
	if media.FilePath != "" {
		if err := s.storage.Delete(media.FilePath); err != nil {
			log.WithError(err).Error("Failed to delete file from storage. Proceeding with DB record deletion.")
		}
	}

	if err := s.repo.DeleteMedia(ctx, mediaID); err != nil {
		return fmt.Errorf("service: could not delete media record: %w", err)
	}
	log.Info("Deleted media item")
	return nil
}

// DeleteAllMedia удаляет все медиафайлы инцидента
func (s *incidentService) DeleteAllMedia(ctx context.Context, incidentID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteAllMedia",
		"incident_id": incidentID,
	})

	mediaList, err := s.repo.ListMediaByIncident(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not list incident media: %w", err)
	}
	log.WithField("count", len(mediaList)).Info("Deleting media items for incident")

	for _, media := range mediaList {
		if media.FilePath == "" {
			continue
		}
		if err := s.storage.Delete(media.FilePath); err != nil {
			log.WithError(err).WithField("file_path", media.FilePath).Error("Failed to delete file from local storage")
		}
	}
	if len(mediaList) > 0 {
		if err := s.repo.DeleteAllMedia(ctx, incidentID); err != nil {
			return fmt.Errorf("service: could not delete media records: %w", err)
		}
	}
	return nil
}
