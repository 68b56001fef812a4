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

type CaseRepository struct {
	db *pgxpool.Pool
}

func NewCaseRepository(db *pgxpool.Pool) service.CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) CreateCase(ctx context.Context, rescueCase *models.RescueCase) error {
	query := `
		INSERT INTO rescue_cases (incident_id, team_id, chat_group_id, assigned_by_user_id, is_active)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		rescueCase.IncidentID,
		rescueCase.TeamID,
		rescueCase.ChatGroupID,
		rescueCase.AssignedByUserID,
		rescueCase.IsActive,
	).Scan(&rescueCase.ID, &rescueCase.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create rescue case: %w", err)
	}
	return nil
}

const caseColumns = `
	id, incident_id, team_id, chat_group_id, assigned_by_user_id,
	is_active, resolution_notes, created_at, closed_at
`

func scanCase(row pgx.Row) (*models.RescueCase, error) {
	rescueCase := &models.RescueCase{}
	err := row.Scan(
		&rescueCase.ID,
		&rescueCase.IncidentID,
		&rescueCase.TeamID,
		&rescueCase.ChatGroupID,
		&rescueCase.AssignedByUserID,
		&rescueCase.IsActive,
		&rescueCase.ResolutionNotes,
		&rescueCase.CreatedAt,
		&rescueCase.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	return rescueCase, nil
}

// GetActiveCaseByIncident возвращает единственный активный выезд инцидента
func (r *CaseRepository) GetActiveCaseByIncident(ctx context.Context, incidentID int64) (*models.RescueCase, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM rescue_cases
		WHERE incident_id = $1 AND is_active
		ORDER BY created_at DESC LIMIT 1;
	`
	rescueCase, err := scanCase(r.db.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("active case for incident %d: %w", incidentID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active case: %w", err)
	}
	return rescueCase, nil
}

// ListActiveIncidentIDsByUser возвращает инциденты с активным выездом,
// в команде которого состоит пользователь
func (r *CaseRepository) ListActiveIncidentIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT rc.incident_id
		FROM rescue_cases rc
		JOIN team_members tm ON tm.team_id = rc.team_id
		WHERE tm.user_id = $1 AND rc.is_active
		ORDER BY rc.incident_id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active incidents by user: %w", err)
	}
	defer rows.Close()

	incidentIDs := make([]int64, 0)
	for rows.Next() {
		var incidentID int64
		if err := rows.Scan(&incidentID); err != nil {
			return nil, fmt.Errorf("failed to scan incident id row: %w", err)
		}
		incidentIDs = append(incidentIDs, incidentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidentIDs, nil
}

// ListActiveTeamMemberIDs возвращает пользователей, занятых в активных выездах
// других инцидентов
func (r *CaseRepository) ListActiveTeamMemberIDs(ctx context.Context, excludeIncidentID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT tm.user_id
		FROM rescue_cases rc
		JOIN team_members tm ON tm.team_id = rc.team_id
		WHERE rc.is_active AND rc.incident_id <> $1;
	`
	rows, err := r.db.Query(ctx, query, excludeIncidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active team members: %w", err)
	}
	defer rows.Close()

	userIDs := make([]int64, 0)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan user id row: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return userIDs, nil
}

func (r *CaseRepository) IsUserInActiveCase(ctx context.Context, userID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM rescue_cases rc
			JOIN team_members tm ON tm.team_id = rc.team_id
			WHERE tm.user_id = $1 AND rc.is_active
		);
	`
	var engaged bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&engaged); err != nil {
		return false, fmt.Errorf("failed to check active case membership: %w", err)
	}
	return engaged, nil
}

func (r *CaseRepository) DeleteCase(ctx context.Context, caseID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rescue_cases WHERE id = $1;`, caseID)
	if err != nil {
		return fmt.Errorf("failed to delete rescue case: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("rescue case with id %d: %w", caseID, service.ErrNotFound)
	}
	return nil
}

// DeactivateCases снимает флаг активности со всех выездов инцидента
func (r *CaseRepository) DeactivateCases(ctx context.Context, incidentID int64) error {
	if _, err := r.db.Exec(ctx, `UPDATE rescue_cases SET is_active = FALSE WHERE incident_id = $1;`, incidentID); err != nil {
		return fmt.Errorf("failed to deactivate cases: %w", err)
	}
	return nil
}

// CloseCase закрывает выезд, фиксируя итоги и время закрытия
func (r *CaseRepository) CloseCase(ctx context.Context, caseID int64, resolutionNotes *string) error {
	query := `
		UPDATE rescue_cases SET
			is_active = FALSE,
			resolution_notes = $1,
			closed_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, resolutionNotes, caseID)
	if err != nil {
		return fmt.Errorf("failed to close rescue case: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("rescue case with id %d: %w", caseID, service.ErrNotFound)
	}
	return nil
}

// DetachChatGroup отвязывает удаленный чат от закрытого выезда
func (r *CaseRepository) DetachChatGroup(ctx context.Context, caseID int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE rescue_cases SET chat_group_id = NULL WHERE id = $1;`, caseID)
	if err != nil {
		return fmt.Errorf("failed to detach chat group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("rescue case with id %d: %w", caseID, service.ErrNotFound)
	}
	return nil
}
