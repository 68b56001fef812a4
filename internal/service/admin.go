package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// defaultResetPassword - пароль, выдаваемый при сбросе администратором
const defaultResetPassword = "pawsome"

// ActiveCaseChecker - контракт проверки занятости пользователя в активном выезде
type ActiveCaseChecker interface {
	IsUserInActiveCase(ctx context.Context, userID int64) (bool, error)
}

// AdminService определяет контракт для административных операций над пользователями
type AdminService interface {
	ListPendingUsers(ctx context.Context) ([]*models.PendingUser, error)
	ApproveUser(ctx context.Context, pendingUserID int64) (*models.User, error)
	DenyUser(ctx context.Context, pendingUserID int64) error
	ListUsersForAdmin(ctx context.Context, currentUserID int64) ([]*models.User, error)
	UpdateUserRoles(ctx context.Context, targetUserID int64, roles []models.RoleName, actorRoles []models.RoleName) error
	DeleteUser(ctx context.Context, targetUserID, actorUserID int64, notifyUsers bool) error
	DeleteUsersBatch(ctx context.Context, userIDs []int64, actorUserID int64, notifyUsers bool) (*models.BatchDeleteResult, error)
	ResetUserPassword(ctx context.Context, targetUserID, actorUserID int64) error
}

type adminService struct {
	repo       UserRepository
	cases      ActiveCaseChecker
	globalChat GlobalChatService
	notifier   Notifier
	logger     *logrus.Logger
}

func NewAdminService(repo UserRepository, cases ActiveCaseChecker, globalChat GlobalChatService, notifier Notifier, logger *logrus.Logger) AdminService {
	return &adminService{
		repo:       repo,
		cases:      cases,
		globalChat: globalChat,
		notifier:   notifier,
		logger:     logger,
	}
}

func (s *adminService) ListPendingUsers(ctx context.Context) ([]*models.PendingUser, error) {
	pending, err := s.repo.ListPendingUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list pending users: %w", err)
	}
	return pending, nil
}

// ApproveUser превращает заявку в полноценный аккаунт: создает пользователя,
// статистику, учетные данные и роль MEMBER, удаляет заявку, добавляет
// пользователя в общий чат и рассылает уведомления
func (s *adminService) ApproveUser(ctx context.Context, pendingUserID int64) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "admin",
		"method":          "ApproveUser",
		"pending_user_id": pendingUserID,
	})

	pending, err := s.repo.GetPendingUserByID(ctx, pendingUserID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get pending user: %w", err)
	}

	user, err := s.repo.PromotePendingUser(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("service: could not promote pending user: %w", err)
	}
	log.WithField("user_id", user.ID).Info("Authorized pending user")

	// Провал добавления в общий чат не отменяет одобрение
	if err := s.globalChat.AddUser(ctx, user.ID); err != nil {
		log.WithError(err).Error("Failed to add new user to global chat")
	}

	s.notifier.Notify(ctx, user.ID, models.NotificationApproval, nil,
		"Welcome aboard! Your Pawsome volunteer account has been approved.", nil, nil)

	s.announceNewMember(ctx, user, pending.Username)
	return user, nil
}

// announceNewMember рассылает остальным участникам уведомление о новичке
func (s *adminService) announceNewMember(ctx context.Context, user *models.User, username string) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "announceNewMember",
		"user_id": user.ID,
	})

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load users for new member announcement")
		return
	}

	message := fmt.Sprintf("%s %s (@%s) has joined Pawsome! Welcome them aboard. \U0001F43E",
		user.FirstName, user.LastName, username)
	count := 0
	for _, recipient := range users {
		if recipient.ID == user.ID {
			continue
		}
		s.notifier.Notify(ctx, recipient.ID, models.NotificationGeneral, nil, message, &user.ID, &user.ID)
		count++
	}
	log.WithField("recipient_count", count).Info("Sent new member announcement")
}

// DenyUser отклоняет заявку и удаляет ее
func (s *adminService) DenyUser(ctx context.Context, pendingUserID int64) error {
	if _, err := s.repo.GetPendingUserByID(ctx, pendingUserID); err != nil {
		return fmt.Errorf("service: could not get pending user: %w", err)
	}
	if err := s.repo.DeletePendingUser(ctx, pendingUserID); err != nil {
		return fmt.Errorf("service: could not delete pending user: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":         "admin",
		"method":          "DenyUser",
		"pending_user_id": pendingUserID,
	}).Info("Denied and deleted pending user")
	return nil
}

// ListUsersForAdmin возвращает всех пользователей, кроме самого администратора
func (s *adminService) ListUsersForAdmin(ctx context.Context, currentUserID int64) ([]*models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	result := make([]*models.User, 0, len(users))
	for _, user := range users {
		if user.ID != currentUserID {
			result = append(result, user)
		}
	}
	return result, nil
}

// UpdateUserRoles заменяет роли пользователя с учетом полномочий инициатора:
// SUPER_ADMIN меняет любые роли, но не может снять SUPER_ADMIN с владельца;
// ADMIN меняет только MEMBER и RESCUE_CAPTAIN и не трогает других админов
func (s *adminService) UpdateUserRoles(ctx context.Context, targetUserID int64, roles []models.RoleName, actorRoles []models.RoleName) error {
	target, err := s.repo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("service: could not get user: %w", err)
	}

	targetIsSuperAdmin := hasRole(target.Roles, models.RoleSuperAdmin)
	targetIsAdmin := hasRole(target.Roles, models.RoleAdmin)

	var finalRoles []models.RoleName
	switch {
	case hasRole(actorRoles, models.RoleSuperAdmin):
		if targetIsSuperAdmin && !hasRole(roles, models.RoleSuperAdmin) {
			return fmt.Errorf("service: super admin role cannot be removed: %w", ErrForbidden)
		}
		finalRoles = roles
	case hasRole(actorRoles, models.RoleAdmin):
		if targetIsAdmin || targetIsSuperAdmin {
			return fmt.Errorf("service: admins cannot modify roles of other admins: %w", ErrForbidden)
		}
		for _, role := range roles {
			if role == models.RoleMember || role == models.RoleRescueCaptain {
				finalRoles = append(finalRoles, role)
			}
		}
	default:
		return fmt.Errorf("service: not authorized to modify user roles: %w", ErrForbidden)
	}

	if err := s.repo.ReplaceUserRoles(ctx, targetUserID, finalRoles); err != nil {
		return fmt.Errorf("service: could not replace user roles: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "UpdateUserRoles",
		"user_id": targetUserID,
		"roles":   finalRoles,
	}).Info("Updated user roles")
	return nil
}

// DeleteUser удаляет пользователя и все связанные с ним данные
func (s *adminService) DeleteUser(ctx context.Context, targetUserID, actorUserID int64, notifyUsers bool) error {
	if targetUserID == actorUserID {
		return fmt.Errorf("service: super admins cannot delete their own account: %w", ErrValidation)
	}

	target, err := s.repo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("service: could not get user: %w", err)
	}
	if hasRole(target.Roles, models.RoleSuperAdmin) {
		return fmt.Errorf("service: cannot delete another super admin: %w", ErrForbidden)
	}

	inActiveCase, err := s.cases.IsUserInActiveCase(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("service: could not check active cases: %w", err)
	}
	if inActiveCase {
		return fmt.Errorf("service: user is assigned to an active rescue case: %w", ErrInvalidState)
	}

	deletedName := target.FullName()
	if err := s.repo.DeleteUserData(ctx, targetUserID); err != nil {
		return fmt.Errorf("service: could not delete user data: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":  "admin",
		"method":   "DeleteUser",
		"user_id":  targetUserID,
		"actor_id": actorUserID,
	}).Info("Deleted user")

	if notifyUsers {
		s.announceRemoval(ctx, fmt.Sprintf("User '%s' has been removed from the system.", deletedName), actorUserID, nil)
	}
	return nil
}

// DeleteUsersBatch удаляет пользователей пачкой, пропуская тех, кого удалить
// нельзя, и возвращает построчный отчет
func (s *adminService) DeleteUsersBatch(ctx context.Context, userIDs []int64, actorUserID int64, notifyUsers bool) (*models.BatchDeleteResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "admin",
		"method":   "DeleteUsersBatch",
		"actor_id": actorUserID,
	})

	result := &models.BatchDeleteResult{
		Deleted: []models.BatchDeleteItem{},
		Skipped: []models.BatchDeleteItem{},
	}
	deletedIDs := make(map[int64]bool)

	for _, userID := range userIDs {
		if userID == actorUserID {
			result.Skipped = append(result.Skipped, models.BatchDeleteItem{UserID: userID, Reason: "Cannot delete self"})
			continue
		}
		target, err := s.repo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				result.Skipped = append(result.Skipped, models.BatchDeleteItem{UserID: userID, Reason: "User not found"})
				continue
			}
			return nil, fmt.Errorf("service: could not get user: %w", err)
		}
		if hasRole(target.Roles, models.RoleSuperAdmin) {
			result.Skipped = append(result.Skipped, models.BatchDeleteItem{UserID: userID, Name: target.FullName(), Reason: "Cannot delete Super Admin"})
			continue
		}
		inActiveCase, err := s.cases.IsUserInActiveCase(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("service: could not check active cases: %w", err)
		}
		if inActiveCase {
			result.Skipped = append(result.Skipped, models.BatchDeleteItem{UserID: userID, Name: target.FullName(), Reason: "User is in an active case"})
			continue
		}

		if err := s.repo.DeleteUserData(ctx, userID); err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Failed to delete user data")
			result.Skipped = append(result.Skipped, models.BatchDeleteItem{UserID: userID, Name: target.FullName(), Reason: "Deletion error"})
			continue
		}
		result.Deleted = append(result.Deleted, models.BatchDeleteItem{UserID: userID, Name: target.FullName()})
		deletedIDs[userID] = true
	}

	if notifyUsers && len(result.Deleted) > 0 {
		names := ""
		for i, item := range result.Deleted {
			if i > 0 {
				names += ", "
			}
			names += item.Name
		}
		message := fmt.Sprintf("The following user(s) have been removed from the system: %s.", names)
		s.announceRemoval(ctx, message, actorUserID, deletedIDs)
	}

	log.WithFields(logrus.Fields{
		"deleted": len(result.Deleted),
		"skipped": len(result.Skipped),
	}).Info("Batch user deletion finished")
	return result, nil
}

// announceRemoval уведомляет оставшихся пользователей об удалении
func (s *adminService) announceRemoval(ctx context.Context, message string, actorUserID int64, excluded map[int64]bool) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load users for removal announcement")
		return
	}
	for _, recipient := range users {
		if excluded[recipient.ID] {
			continue
		}
		s.notifier.Notify(ctx, recipient.ID, models.NotificationGeneral, nil, message, nil, &actorUserID)
	}
}

// ResetUserPassword сбрасывает пароль пользователя на пароль по умолчанию
func (s *adminService) ResetUserPassword(ctx context.Context, targetUserID, actorUserID int64) error {
	if targetUserID == actorUserID {
		return fmt.Errorf("service: super admins cannot reset their own password: %w", ErrValidation)
	}

	target, err := s.repo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("service: could not get user: %w", err)
	}
	if hasRole(target.Roles, models.RoleSuperAdmin) {
		return fmt.Errorf("service: cannot reset the password of another super admin: %w", ErrForbidden)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultResetPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash default password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, targetUserID, string(hash)); err != nil {
		return fmt.Errorf("service: could not reset password: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":  "admin",
		"method":   "ResetUserPassword",
		"user_id":  targetUserID,
		"actor_id": actorUserID,
	}).Warn("User password has been reset to the default")

	s.notifier.Notify(ctx, targetUserID, models.NotificationGeneral, nil,
		"Your password has been reset by an administrator. Please log in using the default password 'pawsome' and change it from your profile immediately.",
		nil, nil)
	return nil
}

// hasRole проверяет наличие роли в списке
func hasRole(roles []models.RoleName, role models.RoleName) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
