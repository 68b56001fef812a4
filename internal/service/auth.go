package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawsome-ngo/rescue-backend/internal/auth"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Ошибки регистрации и входа. Хендлеры отдают их тексты клиенту как есть.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPhoneRegistered    = errors.New("phone number already registered")
	ErrUsernamePending    = errors.New("username is pending approval")
	ErrPhonePending       = errors.New("phone number is pending approval")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService определяет контракт для регистрации и входа
type AuthService interface {
	SignUp(ctx context.Context, pending *models.PendingUser, password string) (*models.PendingUser, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

type authService struct {
	repo     UserRepository
	tokens   *auth.TokenManager
	notifier Notifier
	logger   *logrus.Logger
}

func NewAuthService(repo UserRepository, tokens *auth.TokenManager, notifier Notifier, logger *logrus.Logger) AuthService {
	return &authService{
		repo:     repo,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}
}

// SignUp сохраняет заявку на регистрацию и уведомляет администраторов.
// Аккаунт становится рабочим только после одобрения администратором.
func (s *authService) SignUp(ctx context.Context, pending *models.PendingUser, password string) (*models.PendingUser, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "SignUp",
		"username": pending.Username,
	})

	// Проверки уникальности идут в строгом порядке: сначала действующие
	// пользователи, затем заявки в очереди на одобрение
	exists, err := s.repo.UsernameExists(ctx, pending.Username)
	if err != nil {
		return nil, fmt.Errorf("service: could not check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}
	exists, err = s.repo.PhoneNumberExists(ctx, pending.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("service: could not check phone number: %w", err)
	}
	if exists {
		return nil, ErrPhoneRegistered
	}
	exists, err = s.repo.PendingUsernameExists(ctx, pending.Username)
	if err != nil {
		return nil, fmt.Errorf("service: could not check pending username: %w", err)
	}
	if exists {
		return nil, ErrUsernamePending
	}
	exists, err = s.repo.PendingPhoneNumberExists(ctx, pending.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("service: could not check pending phone number: %w", err)
	}
	if exists {
		return nil, ErrPhonePending
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}
	pending.PasswordHash = string(hash)
	if !pending.HasVehicle {
		pending.VehicleType = nil
	}

	if err := s.repo.CreatePendingUser(ctx, pending); err != nil {
		return nil, fmt.Errorf("service: could not create pending user: %w", err)
	}
	log.WithField("pending_user_id", pending.ID).Info("Created pending signup")

	s.notifyAdmins(ctx, pending)
	return pending, nil
}

// notifyAdmins рассылает администраторам уведомление о новой заявке
func (s *authService) notifyAdmins(ctx context.Context, pending *models.PendingUser) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "auth",
		"method":          "notifyAdmins",
		"pending_user_id": pending.ID,
	})

	admins, err := s.repo.ListUsersByRoles(ctx, []models.RoleName{models.RoleAdmin, models.RoleSuperAdmin})
	if err != nil {
		log.WithError(err).Error("Failed to load admins for signup notification")
		return
	}
	if len(admins) == 0 {
		log.Warn("New user signed up, but no ADMIN or SUPER_ADMIN users were found to notify")
		return
	}

	message := fmt.Sprintf("New user '%s %s' (@%s) signed up and needs approval.",
		pending.FirstName, pending.LastName, pending.Username)
	for _, admin := range admins {
		s.notifier.Notify(ctx, admin.ID, models.NotificationApproval, nil, message, &pending.ID, nil)
	}
	log.WithField("admin_count", len(admins)).Info("Sent signup notifications to admins")
}

// Login проверяет учетные данные и выпускает JWT токен
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	creds, err := s.repo.GetCredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("service: could not get credentials: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByID(ctx, creds.UserID)
	if err != nil {
		return "", nil, fmt.Errorf("service: could not get user: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, username, user.Roles)
	if err != nil {
		return "", nil, fmt.Errorf("service: could not generate token: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"user_id":  user.ID,
		"username": username,
	}).Info("User authenticated successfully")
	return token, user, nil
}
