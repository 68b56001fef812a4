package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListUsersByRoles(ctx context.Context, roles []models.RoleName) ([]*models.User, error)
	GetCredentialsByUsername(ctx context.Context, username string) (*models.Credentials, error)
	GetCredentialsByUserID(ctx context.Context, userID int64) (*models.Credentials, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	UsernameExists(ctx context.Context, username string) (bool, error)
	PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error)
	CreatePendingUser(ctx context.Context, pending *models.PendingUser) error
	PendingUsernameExists(ctx context.Context, username string) (bool, error)
	PendingPhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error)
	ListPendingUsers(ctx context.Context) ([]*models.PendingUser, error)
	GetPendingUserByID(ctx context.Context, id int64) (*models.PendingUser, error)
	DeletePendingUser(ctx context.Context, id int64) error
	PromotePendingUser(ctx context.Context, pending *models.PendingUser) (*models.User, error)
	GetUserStats(ctx context.Context, userID int64) (*models.UserStats, error)
	ApplyCaseReward(ctx context.Context, userID int64, points, hearts int, distance float64) error
	Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error)
	UpdateAvailability(ctx context.Context, userID int64, status models.AvailabilityStatus) error
	UpdateLocation(ctx context.Context, userID int64, latitude, longitude float64) error
	UpdateVehicle(ctx context.Context, userID int64, hasVehicle bool, vehicleType *string) error
	UpdateMedicineBox(ctx context.Context, userID int64, hasMedicineBox bool) error
	UpdateShelter(ctx context.Context, userID int64, canProvideShelter bool) error
	UpdateExperienceLevel(ctx context.Context, userID int64, level models.ExperienceLevel) error
	ReplaceUserRoles(ctx context.Context, userID int64, roles []models.RoleName) error
	DeleteUserData(ctx context.Context, userID int64) error
}

// UserService определяет контракт для бизнес-логики профилей волонтеров
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, *models.UserStats, error)
	UpdateAvailability(ctx context.Context, userID int64, status models.AvailabilityStatus) error
	UpdateLocation(ctx context.Context, userID int64, latitude, longitude float64) error
	UpdateVehicle(ctx context.Context, userID int64, hasVehicle bool, vehicleType *string) error
	UpdateMedicineBox(ctx context.Context, userID int64, hasMedicineBox bool) error
	UpdateShelter(ctx context.Context, userID int64, canProvideShelter bool) error
	UpdateExperienceLevel(ctx context.Context, userID int64, level models.ExperienceLevel) error
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error)
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// GetProfile возвращает профиль пользователя вместе с его статистикой
func (s *userService) GetProfile(ctx context.Context, userID int64) (*models.User, *models.UserStats, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("service: could not get user: %w", err)
	}
	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("service: could not get user stats: %w", err)
	}
	return user, stats, nil
}

func (s *userService) UpdateAvailability(ctx context.Context, userID int64, status models.AvailabilityStatus) error {
	if status != models.Available && status != models.Unavailable {
		return fmt.Errorf("service: unknown availability status %q: %w", status, ErrValidation)
	}
	if err := s.repo.UpdateAvailability(ctx, userID, status); err != nil {
		return fmt.Errorf("service: could not update availability: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateAvailability",
		"user_id": userID,
		"status":  status,
	}).Info("Updated availability status")
	return nil
}

func (s *userService) UpdateLocation(ctx context.Context, userID int64, latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return fmt.Errorf("service: coordinates out of range: %w", ErrValidation)
	}
	if err := s.repo.UpdateLocation(ctx, userID, latitude, longitude); err != nil {
		return fmt.Errorf("service: could not update location: %w", err)
	}
	return nil
}

func (s *userService) UpdateVehicle(ctx context.Context, userID int64, hasVehicle bool, vehicleType *string) error {
	// Тип транспорта хранится только при наличии транспорта
	if !hasVehicle {
		vehicleType = nil
	}
	if err := s.repo.UpdateVehicle(ctx, userID, hasVehicle, vehicleType); err != nil {
		return fmt.Errorf("service: could not update vehicle info: %w", err)
	}
	return nil
}

func (s *userService) UpdateMedicineBox(ctx context.Context, userID int64, hasMedicineBox bool) error {
	if err := s.repo.UpdateMedicineBox(ctx, userID, hasMedicineBox); err != nil {
		return fmt.Errorf("service: could not update medicine box flag: %w", err)
	}
	return nil
}

func (s *userService) UpdateShelter(ctx context.Context, userID int64, canProvideShelter bool) error {
	if err := s.repo.UpdateShelter(ctx, userID, canProvideShelter); err != nil {
		return fmt.Errorf("service: could not update shelter flag: %w", err)
	}
	return nil
}

func (s *userService) UpdateExperienceLevel(ctx context.Context, userID int64, level models.ExperienceLevel) error {
	if level.Rank() < 0 {
		return fmt.Errorf("service: unknown experience level %q: %w", level, ErrValidation)
	}
	if err := s.repo.UpdateExperienceLevel(ctx, userID, level); err != nil {
		return fmt.Errorf("service: could not update experience level: %w", err)
	}
	return nil
}

// ChangePassword меняет пароль после проверки текущего
func (s *userService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	creds, err := s.repo.GetCredentialsByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: could not get credentials: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(oldPassword)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("service: could not verify password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("service: could not update password: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "ChangePassword",
		"user_id": userID,
	}).Info("User changed password")
	return nil
}

// Leaderboard возвращает таблицу лидеров, отсортированную по очкам.
// Пройденное расстояние округляется до одного знака после запятой.
func (s *userService) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	entries, err := s.repo.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get leaderboard: %w", err)
	}
	for i, entry := range entries {
		entry.Rank = i + 1
		entry.DistanceTraveled = math.Round(entry.DistanceTraveled*10) / 10
	}
	return entries, nil
}
