package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// teamNames - пул названий для новых команд, перебирается по кругу
var teamNames = []string{
	"Bark Side", "Purrfect Storm", "Whisker Warriors", "Clowder Crowd", "Meowfia",
	"Scruffy Squad", "Pawsitive Vibes", "Litter Gitters", "Howlers", "Growlers",
	"Alley Cats", "Rescue Rangers", "Fast and the Furrious", "Avengers of Animals",
	"League of Extraordinary Paws", "Pet Detectives", "Dog Whisperers", "Cat Crusaders",
	"Fur-minators", "Critter Crew", "Tail Waggers", "Wet Noses", "Slobbery Kisses",
	"Un-fur-gettable Team", "Cat-astrophe Crew", "Dog-gone Good Team", "Paw-some Posse",
	"Fur-ever Friends", "Animal House", "Zoo Crew", "Wild Things", "Pet Pack",
	"Alpha Dogs", "Top Cats", "Head Hounds", "Main Meows", "Pack Leaders",
	"Pride", "Kennel Krew", "Cattery Crew", "Animal Avengers", "Pet Patrol",
	"Rescue Squad", "Animal Alliance", "Critter Coalition", "Beastie Brigade",
	"Furry Friends", "Paw Patrol", "Animal Kingdom", "Menagerie", "Ark",
	"Barnyard Brigade", "Farm Friends", "City Critters", "Suburban Squad",
	"Rural Rescuers", "Animal Angels", "Pet Protectors", "Guardian Animals",
	"Animal Advocates", "Voice for the Voiceless", "Animal Defenders", "Pet Police",
	"Furry Five-O", "Animal SWAT Team", "Pet Paramedics", "Animal EMTs",
	"Critter Cops", "Beastie Boys (and Girls)", "Furry Force", "Paw Power",
	"Animal Army", "Pet Platoon", "Rescue Regiment", "Animal Armada",
	"Critter Cavalry", "Beastie Battalion", "Furry Fleet", "Paw Platoon",
	"Animal Artillery", "Pet Brigade", "Animal Air Force",
	"Critter Commandos", "Beastie Berets", "Furry Fighters", "Paw Pilots",
	"Animal Aces", "Pet Pioneers", "Rescue Rocketeers", "Animal Astronauts",
	"Critter Comets", "Beastie Blasters", "Furry Fusion", "Paw Power-ups",
	"Animal Atoms", "Pet Particles", "Rescue Rays",
	"Critter Collective", "Beastie Brotherhood", "Furry Fellowship", "Paw Pack",
	"Animal Assembly", "Pet Partnership", "Rescue Ring", "Animal Association",
	"Critter Circle", "Beastie Band", "Furry Family", "Paw Posse",
	"Animal Clan", "Pet Crew", "Rescue Mob", "Animal Crowd", "Critter Company",
	"Beastie Bunch", "Furry Gang", "Paw Party", "Animal Group", "Pet Gang",
	"Rescue Group", "Animal Team", "Critter Team", "Beastie Team", "Furry Team",
	"Paw Team", "Animal Squad", "Pet Squad", "Animal Force",
	"Critter Force", "Beastie Force", "Paw Force", "Animal Power",
	"Pet Power", "Rescue Power", "Animal Powerhouse", "Critter Powerhouse",
	"Beastie Powerhouse", "Furry Powerhouse", "Paw Powerhouse", "Animal Machine",
	"Pet Machine", "Rescue Machine", "Animal Engine", "Critter Engine",
	"Beastie Engine", "Furry Engine", "Paw Engine",
}

// TeamRepository определяет контракт для работы с бд команд
type TeamRepository interface {
	FindTeamByMemberHash(ctx context.Context, memberHash string) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int64) (*models.Team, error)
	CreateTeam(ctx context.Context, team *models.Team) error
	NextTeamNameSeq(ctx context.Context) (int64, error)
	IncrementCaseCount(ctx context.Context, teamID int64) error
}

// KitItemReader - контракт чтения содержимого аптечек волонтеров
type KitItemReader interface {
	ListKitItemNamesByUsers(ctx context.Context, userIDs []int64) ([]string, error)
}

// AssignmentService определяет контракт для подбора и назначения команд
type AssignmentService interface {
	GetAvailableVolunteers(ctx context.Context, incidentID int64) ([]*models.AvailableVolunteer, error)
	AssignTeam(ctx context.Context, incidentID int64, userIDs []int64, assignerID int64) (*models.AssignedTeam, error)
	GetTeamDetails(ctx context.Context, incidentID int64) (*models.TeamDetails, error)
	GetTeamKitItems(ctx context.Context, incidentID int64) ([]string, error)
}

type assignmentService struct {
	teams     TeamRepository
	cases     CaseRepository
	incidents IncidentRepository
	users     UserRepository
	kits      KitItemReader
	chats     ChatService
	notifier  Notifier
	logger    *logrus.Logger
}

func NewAssignmentService(teams TeamRepository, cases CaseRepository, incidents IncidentRepository, users UserRepository, kits KitItemReader, chats ChatService, notifier Notifier, logger *logrus.Logger) AssignmentService {
	return &assignmentService{
		teams:     teams,
		cases:     cases,
		incidents: incidents,
		users:     users,
		kits:      kits,
		chats:     chats,
		notifier:  notifier,
		logger:    logger,
	}
}

// GetAvailableVolunteers возвращает доступных волонтеров, отранжированных для
// назначения: сначала работавшие по этому инциденту, затем заинтересованные,
// затем ближайшие, затем более опытные
func (s *assignmentService) GetAvailableVolunteers(ctx context.Context, incidentID int64) ([]*models.AvailableVolunteer, error) {
	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}

	interested := make(map[int64]bool)
	for _, iu := range incident.InterestedUsers {
		interested[iu.UserID] = true
	}

	engagedIDs, err := s.cases.ListActiveTeamMemberIDs(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list engaged volunteers: %w", err)
	}
	engaged := make(map[int64]bool)
	for _, id := range engagedIDs {
		engaged[id] = true
	}

	history, err := s.incidents.ListCaseHistory(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load incident case history: %w", err)
	}
	previouslyWorked := make(map[int64]bool)
	for _, entry := range history {
		for _, member := range entry.Members {
			previouslyWorked[member.UserID] = true
		}
	}

	var volunteers []*models.AvailableVolunteer
	for _, user := range users {
		if user.AvailabilityStatus != models.Available {
			continue
		}
		volunteers = append(volunteers, &models.AvailableVolunteer{
			UserID:                user.ID,
			FirstName:             user.FirstName,
			HasVehicle:            user.HasVehicle,
			HasMedicineBox:        user.HasMedicineBox,
			ExperienceLevel:       user.ExperienceLevel,
			HasShownInterest:      interested[user.ID],
			IsEngagedInActiveCase: engaged[user.ID],
			DistanceFromIncident:  Distance(user.Latitude, user.Longitude, incident.Latitude, incident.Longitude),
			HasPreviouslyWorked:   previouslyWorked[user.ID],
		})
	}

	sortVolunteers(volunteers)
	return volunteers, nil
}

// sortVolunteers упорядочивает кандидатов по приоритету назначения.
// Кандидаты без координат идут после кандидатов с известным расстоянием.
func sortVolunteers(volunteers []*models.AvailableVolunteer) {
	sort.SliceStable(volunteers, func(i, j int) bool {
		a, b := volunteers[i], volunteers[j]
		if a.HasPreviouslyWorked != b.HasPreviouslyWorked {
			return a.HasPreviouslyWorked
		}
		if a.HasShownInterest != b.HasShownInterest {
			return a.HasShownInterest
		}
		if (a.DistanceFromIncident == nil) != (b.DistanceFromIncident == nil) {
			return a.DistanceFromIncident != nil
		}
		if a.DistanceFromIncident != nil && *a.DistanceFromIncident != *b.DistanceFromIncident {
			return *a.DistanceFromIncident < *b.DistanceFromIncident
		}
		return a.ExperienceLevel.Rank() > b.ExperienceLevel.Rank()
	})
}

// AssignTeam назначает команду на инцидент: сносит предыдущий активный выезд
// вместе с его чатом, находит или создает команду по составу, заводит новый
// чат и выезд и переводит инцидент в ASSIGNED
func (s *assignmentService) AssignTeam(ctx context.Context, incidentID int64, userIDs []int64, assignerID int64) (*models.AssignedTeam, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "AssignTeam",
		"incident_id": incidentID,
		"assigner_id": assignerID,
	})

	if len(userIDs) == 0 {
		return nil, fmt.Errorf("service: team must have at least one member: %w", ErrValidation)
	}

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	assigner, err := s.users.GetUserByID(ctx, assignerID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get assigner: %w", err)
	}
	members := make([]*models.User, 0, len(userIDs))
	for _, userID := range userIDs {
		user, err := s.users.GetUserByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("service: could not get team member %d: %w", userID, err)
		}
		members = append(members, user)
	}

	// Предыдущий активный выезд сносится вместе со своим чатом
	activeCase, err := s.cases.GetActiveCaseByIncident(ctx, incidentID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("service: could not get active case: %w", err)
	}
	if activeCase != nil {
		if err := s.cases.DeleteCase(ctx, activeCase.ID); err != nil {
			return nil, fmt.Errorf("service: could not delete previous active case: %w", err)
		}
		if activeCase.ChatGroupID != nil {
			if err := s.chats.DeleteChatGroupAndData(ctx, *activeCase.ChatGroupID); err != nil {
				log.WithError(err).Error("Failed to delete chat of the previous active case")
			}
		}
	}
	if err := s.cases.DeactivateCases(ctx, incidentID); err != nil {
		return nil, fmt.Errorf("service: could not deactivate stale cases: %w", err)
	}

	team, err := findOrCreateTeam(ctx, s.teams, userIDs)
	if err != nil {
		return nil, err
	}

	chatGroupName := fmt.Sprintf("%s - Incident #%d", team.Name, incidentID)
	chatGroup, err := s.chats.CreateChatGroup(ctx, chatGroupName, models.PurposeIncident, &incidentID, userIDs)
	if err != nil {
		return nil, fmt.Errorf("service: could not create team chat: %w", err)
	}

	rescueCase := &models.RescueCase{
		IncidentID:       incidentID,
		TeamID:           team.ID,
		ChatGroupID:      &chatGroup.ID,
		AssignedByUserID: assignerID,
		IsActive:         true,
	}
	if err := s.cases.CreateCase(ctx, rescueCase); err != nil {
		return nil, fmt.Errorf("service: could not create rescue case: %w", err)
	}

	if err := s.incidents.UpdateStatus(ctx, incidentID, models.StatusAssigned, nil); err != nil {
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}
	incident.Status = models.StatusAssigned

	s.notifyAssignment(ctx, incident, team, members, assigner)

	log.WithFields(logrus.Fields{
		"case_id":   rescueCase.ID,
		"team_name": team.Name,
	}).Info("Assigned team to incident")

	return &models.AssignedTeam{
		CaseID:      rescueCase.ID,
		IncidentID:  incidentID,
		TeamName:    team.Name,
		ChatGroupID: chatGroup.ID,
		Members:     team.Members,
	}, nil
}

// notifyAssignment уведомляет участников команды и назначившего
func (s *assignmentService) notifyAssignment(ctx context.Context, incident *models.Incident, team *models.Team, members []*models.User, assigner *models.User) {
	status := incident.Status
	memberMessage := fmt.Sprintf("You have been assigned to Incident #%d ('%s') by %s.",
		incident.ID, team.Name, assigner.FirstName)
	for _, member := range members {
		if member.ID == assigner.ID {
			continue
		}
		s.notifier.Notify(ctx, member.ID, models.NotificationIncident, &status, memberMessage, &incident.ID, &assigner.ID)
	}

	assignerMessage := fmt.Sprintf("You successfully assigned Team '%s' to Incident #%d.", team.Name, incident.ID)
	s.notifier.Notify(ctx, assigner.ID, models.NotificationIncident, &status, assignerMessage, &incident.ID, nil)
}

// findOrCreateTeam возвращает существующую команду с точно таким же составом
// или создает новую с очередным именем из пула
func findOrCreateTeam(ctx context.Context, teams TeamRepository, userIDs []int64) (*models.Team, error) {
	hash := teamMemberHash(userIDs)
	team, err := teams.FindTeamByMemberHash(ctx, hash)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("service: could not look up team by members: %w", err)
	}

	seq, err := teams.NextTeamNameSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get team name sequence: %w", err)
	}
	newTeam := &models.Team{
		Name:       "Team " + teamNames[seq%int64(len(teamNames))],
		MemberHash: hash,
	}
	for _, userID := range userIDs {
		newTeam.Members = append(newTeam.Members, &models.TeamMember{UserID: userID})
	}
	if err := teams.CreateTeam(ctx, newTeam); err != nil {
		return nil, fmt.Errorf("service: could not create team: %w", err)
	}

	created, err := teams.GetTeamByID(ctx, newTeam.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not reload created team: %w", err)
	}
	return created, nil
}

// teamMemberHash считает стабильный отпечаток состава команды:
// SHA-256 от отсортированных идентификаторов участников
func teamMemberHash(userIDs []int64) string {
	ids := make([]int64, len(userIDs))
	copy(ids, userIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, ",")))
	return hex.EncodeToString(sum[:])
}

// GetTeamDetails возвращает команду активного выезда по инциденту
func (s *assignmentService) GetTeamDetails(ctx context.Context, incidentID int64) (*models.TeamDetails, error) {
	rescueCase, err := s.cases.GetActiveCaseByIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: no active case found for this incident: %w", err)
	}
	team, err := s.teams.GetTeamByID(ctx, rescueCase.TeamID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get team: %w", err)
	}

	details := &models.TeamDetails{
		TeamName: team.Name,
		Members:  team.Members,
	}
	if assigner, err := s.users.GetUserByID(ctx, rescueCase.AssignedByUserID); err == nil {
		details.AssignedBy = assigner.FirstName
	}
	return details, nil
}

// GetTeamKitItems возвращает уникальные названия предметов из аптечек
// участников команды активного выезда
func (s *assignmentService) GetTeamKitItems(ctx context.Context, incidentID int64) ([]string, error) {
	rescueCase, err := s.cases.GetActiveCaseByIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: no active case found for this incident: %w", err)
	}
	team, err := s.teams.GetTeamByID(ctx, rescueCase.TeamID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get team: %w", err)
	}

	var userIDs []int64
	for _, member := range team.Members {
		user, err := s.users.GetUserByID(ctx, member.UserID)
		if err != nil {
			continue
		}
		if user.HasMedicineBox {
			userIDs = append(userIDs, user.ID)
		}
	}
	if len(userIDs) == 0 {
		return []string{}, nil
	}

	items, err := s.kits.ListKitItemNamesByUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("service: could not list team kit items: %w", err)
	}
	return items, nil
}
