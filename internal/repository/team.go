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

type TeamRepository struct {
	db *pgxpool.Pool
}

func NewTeamRepository(db *pgxpool.Pool) service.TeamRepository {
	return &TeamRepository{db: db}
}

// FindTeamByMemberHash ищет команду с точно таким же составом участников
func (r *TeamRepository) FindTeamByMemberHash(ctx context.Context, memberHash string) (*models.Team, error) {
	team := &models.Team{}
	query := `SELECT id, name, member_hash, case_count FROM teams WHERE member_hash = $1;`
	err := r.db.QueryRow(ctx, query, memberHash).Scan(&team.ID, &team.Name, &team.MemberHash, &team.CaseCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("team with member hash %s: %w", memberHash, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find team by member hash: %w", err)
	}

	team.Members, err = listTeamMembers(ctx, r.db, team.ID)
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, id int64) (*models.Team, error) {
	team := &models.Team{}
	query := `SELECT id, name, member_hash, case_count FROM teams WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).Scan(&team.ID, &team.Name, &team.MemberHash, &team.CaseCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("team with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team by id: %w", err)
	}

	team.Members, err = listTeamMembers(ctx, r.db, team.ID)
	if err != nil {
		return nil, err
	}
	return team, nil
}

// CreateTeam создает команду вместе с составом в одной транзакции
func (r *TeamRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO teams (name, member_hash) VALUES ($1, $2) RETURNING id, case_count;`,
		team.Name, team.MemberHash,
	).Scan(&team.ID, &team.CaseCount)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	for _, member := range team.Members {
		if _, err := tx.Exec(ctx,
			`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2);`,
			team.ID, member.UserID,
		); err != nil {
			return fmt.Errorf("failed to add team member: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// NextTeamNameSeq возвращает очередное значение последовательности имен команд
func (r *TeamRepository) NextTeamNameSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('team_name_seq');`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to get next team name sequence: %w", err)
	}
	return seq, nil
}

func (r *TeamRepository) IncrementCaseCount(ctx context.Context, teamID int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE teams SET case_count = case_count + 1 WHERE id = $1;`, teamID)
	if err != nil {
		return fmt.Errorf("failed to increment team case count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("team with id %d: %w", teamID, service.ErrNotFound)
	}
	return nil
}

// listTeamMembers возвращает состав команды с именами участников
func listTeamMembers(ctx context.Context, db *pgxpool.Pool, teamID int64) ([]*models.TeamMember, error) {
	query := `
		SELECT tm.user_id, u.first_name, u.last_name
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY u.first_name, u.last_name;
	`
	rows, err := db.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := make([]*models.TeamMember, 0)
	for rows.Next() {
		member := &models.TeamMember{}
		if err := rows.Scan(&member.UserID, &member.FirstName, &member.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return members, nil
}
