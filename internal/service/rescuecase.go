package service

import (
	"context"
	"fmt"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// CaseRepository определяет контракт для работы с бд выездов
type CaseRepository interface {
	CreateCase(ctx context.Context, rescueCase *models.RescueCase) error
	GetActiveCaseByIncident(ctx context.Context, incidentID int64) (*models.RescueCase, error)
	ListActiveIncidentIDsByUser(ctx context.Context, userID int64) ([]int64, error)
	ListActiveTeamMemberIDs(ctx context.Context, excludeIncidentID int64) ([]int64, error)
	IsUserInActiveCase(ctx context.Context, userID int64) (bool, error)
	DeleteCase(ctx context.Context, caseID int64) error
	DeactivateCases(ctx context.Context, incidentID int64) error
	CloseCase(ctx context.Context, caseID int64, resolutionNotes *string) error
	DetachChatGroup(ctx context.Context, caseID int64) error
}

// RescueCaseService определяет контракт для бизнес-логики выездов
type RescueCaseService interface {
	GetMyCases(ctx context.Context, userID int64) ([]*models.Incident, error)
	ConfirmInitiation(ctx context.Context, incidentID int64, participatingUserIDs []int64, initiatorUserID int64) error
	CloseCase(ctx context.Context, incidentID int64, details *models.CaseCompletionDetails, media []*models.IncidentMedia) error
}

type rescueCaseService struct {
	cases     CaseRepository
	teams     TeamRepository
	incidents IncidentRepository
	users     UserRepository
	chats     ChatService
	notifier  Notifier
	logger    *logrus.Logger
}

func NewRescueCaseService(cases CaseRepository, teams TeamRepository, incidents IncidentRepository, users UserRepository, chats ChatService, notifier Notifier, logger *logrus.Logger) RescueCaseService {
	return &rescueCaseService{
		cases:     cases,
		teams:     teams,
		incidents: incidents,
		users:     users,
		chats:     chats,
		notifier:  notifier,
		logger:    logger,
	}
}

// GetMyCases возвращает инциденты, по которым у пользователя есть активный выезд
func (s *rescueCaseService) GetMyCases(ctx context.Context, userID int64) ([]*models.Incident, error) {
	incidentIDs, err := s.cases.ListActiveIncidentIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active cases: %w", err)
	}

	incidents := make([]*models.Incident, 0, len(incidentIDs))
	for _, incidentID := range incidentIDs {
		incident, err := s.incidents.GetByID(ctx, incidentID)
		if err != nil {
			return nil, fmt.Errorf("service: could not get incident %d: %w", incidentID, err)
		}
		incidents = append(incidents, incident)
	}
	return incidents, nil
}

// ConfirmInitiation подтверждает начало выезда фактическим составом.
// Если выехали все назначенные, инцидент просто переходит в IN_PROGRESS.
// Если выехала часть команды, старый выезд закрывается вместе с чатом,
// а для фактического состава создаются новая команда, чат и выезд.
func (s *rescueCaseService) ConfirmInitiation(ctx context.Context, incidentID int64, participatingUserIDs []int64, initiatorUserID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "rescuecase",
		"method":       "ConfirmInitiation",
		"incident_id":  incidentID,
		"initiator_id": initiatorUserID,
	})

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.Status != models.StatusAssigned {
		return fmt.Errorf("service: only an ASSIGNED case can be initiated: %w", ErrInvalidState)
	}

	activeCase, err := s.cases.GetActiveCaseByIncident(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: no active case found for this assigned incident: %w", err)
	}
	team, err := s.teams.GetTeamByID(ctx, activeCase.TeamID)
	if err != nil {
		return fmt.Errorf("service: could not get assigned team: %w", err)
	}

	originalMemberIDs := make(map[int64]bool, len(team.Members))
	for _, member := range team.Members {
		originalMemberIDs[member.UserID] = true
	}
	if !originalMemberIDs[initiatorUserID] {
		return fmt.Errorf("service: only members of the assigned team can initiate the case: %w", ErrForbidden)
	}
	if len(participatingUserIDs) == 0 {
		return fmt.Errorf("service: at least one participating member must be selected: %w", ErrValidation)
	}
	participating := make(map[int64]bool, len(participatingUserIDs))
	for _, userID := range participatingUserIDs {
		if !originalMemberIDs[userID] {
			return fmt.Errorf("service: selected participants include users not assigned to this case: %w", ErrValidation)
		}
		participating[userID] = true
	}

	initiator, err := s.users.GetUserByID(ctx, initiatorUserID)
	if err != nil {
		return fmt.Errorf("service: could not get initiator: %w", err)
	}

	if len(participating) == len(originalMemberIDs) {
		// Выехал полный состав
		if err := s.incidents.UpdateStatus(ctx, incidentID, models.StatusInProgress, nil); err != nil {
			return fmt.Errorf("service: could not update incident status: %w", err)
		}
	} else {
		// Выехала часть команды: пересобираем выезд под фактический состав
		if err := s.cases.CloseCase(ctx, activeCase.ID, nil); err != nil {
			return fmt.Errorf("service: could not close previous case: %w", err)
		}
		if activeCase.ChatGroupID != nil {
			if err := s.chats.DeleteChatGroupAndData(ctx, *activeCase.ChatGroupID); err != nil {
				log.WithError(err).Error("Failed to delete chat of the reassigned case")
			}
			if err := s.cases.DetachChatGroup(ctx, activeCase.ID); err != nil {
				log.WithError(err).Error("Failed to detach chat group from closed case")
			}
		}

		newTeam, err := findOrCreateTeam(ctx, s.teams, participatingUserIDs)
		if err != nil {
			return err
		}
		chatGroupName := fmt.Sprintf("%s - Incident #%d (Active)", newTeam.Name, incidentID)
		chatGroup, err := s.chats.CreateChatGroup(ctx, chatGroupName, models.PurposeIncident, &incidentID, participatingUserIDs)
		if err != nil {
			return fmt.Errorf("service: could not create team chat: %w", err)
		}

		newCase := &models.RescueCase{
			IncidentID:       incidentID,
			TeamID:           newTeam.ID,
			ChatGroupID:      &chatGroup.ID,
			AssignedByUserID: initiatorUserID,
			IsActive:         true,
		}
		if err := s.cases.CreateCase(ctx, newCase); err != nil {
			return fmt.Errorf("service: could not create rescue case: %w", err)
		}
		if err := s.incidents.UpdateStatus(ctx, incidentID, models.StatusInProgress, nil); err != nil {
			return fmt.Errorf("service: could not update incident status: %w", err)
		}
	}

	status := models.StatusInProgress
	message := fmt.Sprintf("Case for Incident #%d has been initiated by %s.", incidentID, initiator.FirstName)
	for userID := range participating {
		s.notifier.Notify(ctx, userID, models.NotificationIncident, &status, message, &incidentID, &initiatorUserID)
	}
	log.WithField("participant_count", len(participating)).Info("Case initiation confirmed")
	return nil
}

// CloseCase закрывает активный выезд: начисляет награды, фиксирует итоги,
// прикладывает медиа, чистит отметки интереса, удаляет чат команды
// и возвращает инцидент в ONGOING
func (s *rescueCaseService) CloseCase(ctx context.Context, incidentID int64, details *models.CaseCompletionDetails, media []*models.IncidentMedia) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "rescuecase",
		"method":      "CloseCase",
		"incident_id": incidentID,
	})

	activeCase, err := s.cases.GetActiveCaseByIncident(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: active case not found for incident: %w", err)
	}
	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not get incident: %w", err)
	}
	team, err := s.teams.GetTeamByID(ctx, activeCase.TeamID)
	if err != nil {
		return fmt.Errorf("service: could not get team: %w", err)
	}

	// Награды считаются до чистки отметок интереса
	rewards, err := s.applyRewards(ctx, incident, team, details)
	if err != nil {
		return err
	}

	notes := details.ResolutionNotes
	if err := s.cases.CloseCase(ctx, activeCase.ID, &notes); err != nil {
		return fmt.Errorf("service: could not close case: %w", err)
	}
	if err := s.incidents.UpdateStatus(ctx, incidentID, models.StatusOngoing, nil); err != nil {
		return fmt.Errorf("service: could not update incident status: %w", err)
	}
	if err := s.incidents.IncrementCaseCount(ctx, incidentID); err != nil {
		return fmt.Errorf("service: could not increment incident case count: %w", err)
	}
	if err := s.teams.IncrementCaseCount(ctx, team.ID); err != nil {
		log.WithError(err).Error("Failed to increment team case count")
	}

	if details.FinalLatitude != nil && details.FinalLongitude != nil {
		if err := s.incidents.UpdateLocation(ctx, incidentID, *details.FinalLatitude, *details.FinalLongitude); err != nil {
			log.WithError(err).Error("Failed to update incident final location")
		}
	}

	for _, item := range media {
		item.IncidentID = incidentID
		item.CaseID = &activeCase.ID
		if err := s.incidents.AddMedia(ctx, item); err != nil {
			log.WithError(err).WithField("file_path", item.FilePath).Error("Failed to save case media record")
		}
	}

	if err := s.incidents.RemoveAllInterests(ctx, incidentID); err != nil {
		log.WithError(err).Error("Failed to clear interest records")
	}

	if activeCase.ChatGroupID != nil {
		if err := s.chats.DeleteChatGroupAndData(ctx, *activeCase.ChatGroupID); err != nil {
			log.WithError(err).Error("Failed to delete team chat")
		}
		if err := s.cases.DetachChatGroup(ctx, activeCase.ID); err != nil {
			log.WithError(err).Error("Failed to detach chat group from closed case")
		}
	}

	status := models.StatusOngoing
	for _, member := range team.Members {
		reward := rewards[member.UserID]
		suffix := ""
		if reward.Hearts > 0 {
			plural := ""
			if reward.Hearts > 1 {
				plural = "s"
			}
			suffix = fmt.Sprintf(" and %d heart%s", reward.Hearts, plural)
		}
		message := fmt.Sprintf("Case for Incident #%d completed! \U0001F389 You earned %d points%s.",
			incidentID, reward.Points, suffix)
		s.notifier.Notify(ctx, member.UserID, models.NotificationRewards, &status, message, &incidentID, nil)
	}
	log.WithField("member_count", len(team.Members)).Info("Closed rescue case and sent reward notifications")
	return nil
}

// applyRewards начисляет участникам очки, сердца, дистанцию и счетчик выездов.
// Заинтересованные заранее получают 5 очков и сердце, остальные 4 очка.
func (s *rescueCaseService) applyRewards(ctx context.Context, incident *models.Incident, team *models.Team, details *models.CaseCompletionDetails) (map[int64]models.CaseReward, error) {
	interested := make(map[int64]bool)
	for _, iu := range incident.InterestedUsers {
		interested[iu.UserID] = true
	}

	finalLat := incident.Latitude
	finalLon := incident.Longitude
	if details.FinalLatitude != nil {
		finalLat = details.FinalLatitude
	}
	if details.FinalLongitude != nil {
		finalLon = details.FinalLongitude
	}

	rewards := make(map[int64]models.CaseReward, len(team.Members))
	for _, member := range team.Members {
		user, err := s.users.GetUserByID(ctx, member.UserID)
		if err != nil {
			return nil, fmt.Errorf("service: could not get team member %d: %w", member.UserID, err)
		}

		reward := models.CaseReward{Points: 4}
		if interested[user.ID] {
			reward = models.CaseReward{Points: 5, Hearts: 1}
		}

		distance := 0.0
		if d := Distance(user.Latitude, user.Longitude, finalLat, finalLon); d != nil {
			distance = *d
		}

		if err := s.users.ApplyCaseReward(ctx, user.ID, reward.Points, reward.Hearts, distance); err != nil {
			return nil, fmt.Errorf("service: could not apply reward for user %d: %w", user.ID, err)
		}
		rewards[user.ID] = reward
	}
	return rewards, nil
}
