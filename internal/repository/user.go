package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	u.id,
	u.first_name,
	u.last_name,
	u.phone_number,
	u.address,
	u.motivation,
	u.has_vehicle,
	u.vehicle_type,
	u.can_provide_shelter,
	u.has_medicine_box,
	u.latitude,
	u.longitude,
	u.availability_status,
	u.experience_level,
	u.joined_since,
	COALESCE(array_agg(ur.role) FILTER (WHERE ur.role IS NOT NULL), '{}') AS roles
`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	var roles []string
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.PhoneNumber,
		&user.Address,
		&user.Motivation,
		&user.HasVehicle,
		&user.VehicleType,
		&user.CanProvideShelter,
		&user.HasMedicineBox,
		&user.Latitude,
		&user.Longitude,
		&user.AvailabilityStatus,
		&user.ExperienceLevel,
		&user.JoinedSince,
		&roles,
	)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		user.Roles = append(user.Roles, models.RoleName(role))
	}
	return user, nil
}

// GetUserByID возвращает пользователя с его ролями
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// ListUsers возвращает всех пользователей с ролями
func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		GROUP BY u.id
		ORDER BY u.first_name, u.last_name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return users, nil
}

// ListUsersByRoles возвращает пользователей, имеющих хотя бы одну из ролей
func (r *UserRepository) ListUsersByRoles(ctx context.Context, roles []models.RoleName) ([]*models.User, error) {
	roleNames := make([]string, len(roles))
	for i, role := range roles {
		roleNames[i] = string(role)
	}
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		WHERE u.id IN (SELECT user_id FROM user_roles WHERE role = ANY($1))
		GROUP BY u.id;
	`
	rows, err := r.db.Query(ctx, query, roleNames)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by roles: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetCredentialsByUsername(ctx context.Context, username string) (*models.Credentials, error) {
	creds := &models.Credentials{}
	query := `SELECT user_id, username, password_hash FROM credentials WHERE username = $1;`
	err := r.db.QueryRow(ctx, query, username).Scan(&creds.UserID, &creds.Username, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("credentials for username %q: %w", username, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get credentials by username: %w", err)
	}
	return creds, nil
}

func (r *UserRepository) GetCredentialsByUserID(ctx context.Context, userID int64) (*models.Credentials, error) {
	creds := &models.Credentials{}
	query := `SELECT user_id, username, password_hash FROM credentials WHERE user_id = $1;`
	err := r.db.QueryRow(ctx, query, userID).Scan(&creds.UserID, &creds.Username, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("credentials for user %d: %w", userID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get credentials by user id: %w", err)
	}
	return creds, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE credentials SET password_hash = $1 WHERE user_id = $2;`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("credentials for user %d: %w", userID, service.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM credentials WHERE username = $1);`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE phone_number = $1);`, phoneNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check phone number: %w", err)
	}
	return exists, nil
}

// CreatePendingUser сохраняет заявку на регистрацию
func (r *UserRepository) CreatePendingUser(ctx context.Context, pending *models.PendingUser) error {
	query := `
		INSERT INTO pending_users (
			username, password_hash, first_name, last_name, phone_number, address, motivation,
			has_vehicle, vehicle_type, can_provide_shelter, has_medicine_box, latitude, longitude
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, signed_up_at;
	`
	err := r.db.QueryRow(ctx, query,
		pending.Username,
		pending.PasswordHash,
		pending.FirstName,
		pending.LastName,
		pending.PhoneNumber,
		pending.Address,
		pending.Motivation,
		pending.HasVehicle,
		pending.VehicleType,
		pending.CanProvideShelter,
		pending.HasMedicineBox,
		pending.Latitude,
		pending.Longitude,
	).Scan(&pending.ID, &pending.SignedUpAt)
	if err != nil {
		return fmt.Errorf("failed to create pending user: %w", err)
	}
	return nil
}

func (r *UserRepository) PendingUsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM pending_users WHERE username = $1);`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending username: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) PendingPhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM pending_users WHERE phone_number = $1);`, phoneNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending phone number: %w", err)
	}
	return exists, nil
}

const pendingUserColumns = `
	id, username, password_hash, first_name, last_name, phone_number, address, motivation,
	has_vehicle, vehicle_type, can_provide_shelter, has_medicine_box, latitude, longitude, signed_up_at
`

func scanPendingUser(row pgx.Row) (*models.PendingUser, error) {
	pending := &models.PendingUser{}
	err := row.Scan(
		&pending.ID,
		&pending.Username,
		&pending.PasswordHash,
		&pending.FirstName,
		&pending.LastName,
		&pending.PhoneNumber,
		&pending.Address,
		&pending.Motivation,
		&pending.HasVehicle,
		&pending.VehicleType,
		&pending.CanProvideShelter,
		&pending.HasMedicineBox,
		&pending.Latitude,
		&pending.Longitude,
		&pending.SignedUpAt,
	)
	if err != nil {
		return nil, err
	}
	return pending, nil
}

func (r *UserRepository) ListPendingUsers(ctx context.Context) ([]*models.PendingUser, error) {
	query := `SELECT ` + pendingUserColumns + ` FROM pending_users ORDER BY signed_up_at;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}
	defer rows.Close()

	pendings := make([]*models.PendingUser, 0)
	for rows.Next() {
		pending, err := scanPendingUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending user row: %w", err)
		}
		pendings = append(pendings, pending)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return pendings, nil
}

func (r *UserRepository) GetPendingUserByID(ctx context.Context, id int64) (*models.PendingUser, error) {
	query := `SELECT ` + pendingUserColumns + ` FROM pending_users WHERE id = $1;`
	pending, err := scanPendingUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pending user with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pending user by id: %w", err)
	}
	return pending, nil
}

func (r *UserRepository) DeletePendingUser(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM pending_users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pending user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("pending user with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

// PromotePendingUser в одной транзакции превращает заявку в полноценного
// пользователя: профиль, статистика, учетные данные, роль MEMBER,
// удаление заявки
func (r *UserRepository) PromotePendingUser(ctx context.Context, pending *models.PendingUser) (*models.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	user := &models.User{
		FirstName:          pending.FirstName,
		LastName:           pending.LastName,
		PhoneNumber:        pending.PhoneNumber,
		Address:            pending.Address,
		Motivation:         pending.Motivation,
		HasVehicle:         pending.HasVehicle,
		VehicleType:        pending.VehicleType,
		CanProvideShelter:  pending.CanProvideShelter,
		HasMedicineBox:     pending.HasMedicineBox,
		Latitude:           pending.Latitude,
		Longitude:          pending.Longitude,
		AvailabilityStatus: models.Available,
		ExperienceLevel:    models.ExperienceBeginner,
		Roles:              []models.RoleName{models.RoleMember},
	}

	insertUser := `
		INSERT INTO users (
			first_name, last_name, phone_number, address, motivation,
			has_vehicle, vehicle_type, can_provide_shelter, has_medicine_box,
			latitude, longitude, availability_status, experience_level
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, joined_since;
	`
	err = tx.QueryRow(ctx, insertUser,
		user.FirstName,
		user.LastName,
		user.PhoneNumber,
		user.Address,
		user.Motivation,
		user.HasVehicle,
		user.VehicleType,
		user.CanProvideShelter,
		user.HasMedicineBox,
		user.Latitude,
		user.Longitude,
		user.AvailabilityStatus,
		user.ExperienceLevel,
	).Scan(&user.ID, &user.JoinedSince)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO user_stats (user_id) VALUES ($1);`, user.ID); err != nil {
		return nil, fmt.Errorf("failed to insert user stats: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO credentials (user_id, username, password_hash) VALUES ($1, $2, $3);`,
		user.ID, pending.Username, pending.PasswordHash,
	); err != nil {
		return nil, fmt.Errorf("failed to insert credentials: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2);`,
		user.ID, models.RoleMember,
	); err != nil {
		return nil, fmt.Errorf("failed to insert user role: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM pending_users WHERE id = $1;`, pending.ID); err != nil {
		return nil, fmt.Errorf("failed to delete pending user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetUserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	stats := &models.UserStats{}
	query := `SELECT user_id, points, hearts, distance_traveled, cases_completed FROM user_stats WHERE user_id = $1;`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.Points,
		&stats.Hearts,
		&stats.DistanceTraveled,
		&stats.CasesCompleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("stats for user %d: %w", userID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}

// ApplyCaseReward начисляет награду за закрытый выезд одной операцией
func (r *UserRepository) ApplyCaseReward(ctx context.Context, userID int64, points, hearts int, distance float64) error {
	query := `
		UPDATE user_stats SET
			points = points + $1,
			hearts = hearts + $2,
			distance_traveled = distance_traveled + $3,
			cases_completed = cases_completed + 1
		WHERE user_id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, points, hearts, distance, userID)
	if err != nil {
		return fmt.Errorf("failed to apply case reward: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("stats for user %d: %w", userID, service.ErrNotFound)
	}
	return nil
}

// Leaderboard возвращает статистику волонтеров, отсортированную по очкам
func (r *UserRepository) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT u.id, u.first_name, s.points, s.hearts, s.distance_traveled, s.cases_completed
		FROM user_stats s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.points DESC, s.hearts DESC, u.first_name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.LeaderboardEntry, 0)
	for rows.Next() {
		entry := &models.LeaderboardEntry{}
		err := rows.Scan(
			&entry.UserID,
			&entry.FirstName,
			&entry.Points,
			&entry.Hearts,
			&entry.DistanceTraveled,
			&entry.CasesCompleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}

func (r *UserRepository) UpdateAvailability(ctx context.Context, userID int64, status models.AvailabilityStatus) error {
	return r.updateUserField(ctx, userID, `UPDATE users SET availability_status = $1 WHERE id = $2;`, status)
}

func (r *UserRepository) UpdateLocation(ctx context.Context, userID int64, latitude, longitude float64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET latitude = $1, longitude = $2 WHERE id = $3;`, latitude, longitude, userID)
	if err != nil {
		return fmt.Errorf("failed to update user location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d: %w", userID, service.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateVehicle(ctx context.Context, userID int64, hasVehicle bool, vehicleType *string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET has_vehicle = $1, vehicle_type = $2 WHERE id = $3;`, hasVehicle, vehicleType, userID)
	if err != nil {
		return fmt.Errorf("failed to update user vehicle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d: %w", userID, service.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateMedicineBox(ctx context.Context, userID int64, hasMedicineBox bool) error {
	return r.updateUserField(ctx, userID, `UPDATE users SET has_medicine_box = $1 WHERE id = $2;`, hasMedicineBox)
}

func (r *UserRepository) UpdateShelter(ctx context.Context, userID int64, canProvideShelter bool) error {
	return r.updateUserField(ctx, userID, `UPDATE users SET can_provide_shelter = $1 WHERE id = $2;`, canProvideShelter)
}

func (r *UserRepository) UpdateExperienceLevel(ctx context.Context, userID int64, level models.ExperienceLevel) error {
	return r.updateUserField(ctx, userID, `UPDATE users SET experience_level = $1 WHERE id = $2;`, level)
}

func (r *UserRepository) updateUserField(ctx context.Context, userID int64, query string, value any) error {
	cmdTag, err := r.db.Exec(ctx, query, value, userID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d: %w", userID, service.ErrNotFound)
	}
	return nil
}

// ReplaceUserRoles заменяет набор ролей пользователя в одной транзакции
func (r *UserRepository) ReplaceUserRoles(ctx context.Context, userID int64, roles []models.RoleName) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}
	for _, role := range roles {
		if _, err := tx.Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, $2);`, userID, role); err != nil {
			return fmt.Errorf("failed to insert user role: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteUserData удаляет пользователя со всеми зависимыми данными в одной
// транзакции: подписки, уведомления, отметки интереса, участие в чатах,
// аптечка, заявки на инвентарь, роли и учетные данные
func (r *UserRepository) DeleteUserData(ctx context.Context, userID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM push_subscriptions WHERE user_id = $1;`,
		`DELETE FROM notifications WHERE recipient_user_id = $1;`,
		`UPDATE notifications SET triggering_user_id = NULL WHERE triggering_user_id = $1;`,
		`DELETE FROM incident_interests WHERE user_id = $1;`,
		`DELETE FROM chat_read_receipts WHERE user_id = $1;`,
		`DELETE FROM chat_reactions WHERE user_id = $1;`,
		`DELETE FROM chat_reactions WHERE message_id IN (SELECT id FROM chat_messages WHERE sender_id = $1);`,
		`DELETE FROM chat_read_receipts WHERE message_id IN (SELECT id FROM chat_messages WHERE sender_id = $1);`,
		`DELETE FROM chat_messages WHERE sender_id = $1;`,
		`DELETE FROM chat_participants WHERE user_id = $1;`,
		`DELETE FROM first_aid_kit_items WHERE kit_id IN (SELECT id FROM first_aid_kits WHERE user_id = $1);`,
		`DELETE FROM first_aid_kits WHERE user_id = $1;`,
		`DELETE FROM requisition_items WHERE requisition_id IN (SELECT id FROM requisitions WHERE user_id = $1);`,
		`DELETE FROM requisitions WHERE user_id = $1;`,
		`UPDATE inventory_logs SET user_id = NULL WHERE user_id = $1;`,
		`DELETE FROM team_members WHERE user_id = $1;`,
		`DELETE FROM user_roles WHERE user_id = $1;`,
		`DELETE FROM credentials WHERE user_id = $1;`,
		`DELETE FROM user_stats WHERE user_id = $1;`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(ctx, statement, userID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d: %w", userID, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
