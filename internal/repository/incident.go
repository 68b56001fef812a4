package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/service"
	"github.com/redis/go-redis/v9"
)

// incidentCacheTTL - срок жизни инцидента в кэше Redis
const incidentCacheTTL = 5 * time.Minute

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			informer_name, contact_number, latitude, longitude, location,
			animal_type, description, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, case_count, reported_at, last_updated;
	`
	err := r.db.QueryRow(ctx, query,
		incident.InformerName,
		incident.ContactNumber,
		incident.Latitude,
		incident.Longitude,
		incident.Location,
		incident.AnimalType,
		incident.Description,
		incident.Status,
	).Scan(&incident.ID, &incident.CaseCount, &incident.ReportedAt, &incident.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

const incidentColumns = `
	id, informer_name, contact_number, latitude, longitude, location,
	animal_type, description, closing_reason, case_count, status, reported_at, last_updated
`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.InformerName,
		&incident.ContactNumber,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Location,
		&incident.AnimalType,
		&incident.Description,
		&incident.ClosingReason,
		&incident.CaseCount,
		&incident.Status,
		&incident.ReportedAt,
		&incident.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// GetByID возвращает инцидент с медиафайлами и заинтересованными волонтерами,
// сначала пробуя кэш Redis
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	if cached, err := r.getIncidentFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}

	incident.MediaFiles, err = r.ListMediaByIncident(ctx, id)
	if err != nil {
		return nil, err
	}
	incident.InterestedUsers, err = r.listInterestedUsers(ctx, id)
	if err != nil {
		return nil, err
	}

	// Кэш вспомогательный, его ошибки не мешают чтению из бд
	_ = r.setIncidentCache(ctx, incident)
	return incident, nil
}

// ListAll возвращает все инциденты, свежие сверху
func (r *IncidentRepository) ListAll(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY last_updated DESC;`
	return r.listIncidents(ctx, query)
}

func (r *IncidentRepository) ListByStatus(ctx context.Context, status models.IncidentStatus) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE status = $1 ORDER BY last_updated DESC;`
	return r.listIncidents(ctx, query, status)
}

func (r *IncidentRepository) listIncidents(ctx context.Context, query string, args ...any) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// ListSummaries возвращает краткие карточки инцидентов, исключая указанные статусы
func (r *IncidentRepository) ListSummaries(ctx context.Context, excludeStatuses []models.IncidentStatus) ([]*models.IncidentSummary, error) {
	excluded := make([]string, len(excludeStatuses))
	for i, status := range excludeStatuses {
		excluded[i] = string(status)
	}
	query := `
		SELECT
			i.id, i.informer_name, i.location, i.animal_type, i.status, i.case_count, i.last_updated,
			(
				SELECT rc.assigned_by_user_id FROM rescue_cases rc
				WHERE rc.incident_id = i.id AND rc.is_active
				ORDER BY rc.created_at DESC LIMIT 1
			) AS assigned_by_user_id
		FROM incidents i
		WHERE cardinality($1::text[]) = 0 OR i.status <> ALL($1::text[])
		ORDER BY i.last_updated DESC;
	`
	rows, err := r.db.Query(ctx, query, excluded)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]*models.IncidentSummary, 0)
	for rows.Next() {
		summary := &models.IncidentSummary{}
		err := rows.Scan(
			&summary.ID,
			&summary.InformerName,
			&summary.Location,
			&summary.AnimalType,
			&summary.Status,
			&summary.CaseCount,
			&summary.LastUpdated,
			&summary.AssignedByUserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident summary row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return summaries, nil
}

// UpdateDetails обновляет описательные поля инцидента
func (r *IncidentRepository) UpdateDetails(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			informer_name = $1,
			contact_number = $2,
			animal_type = $3,
			description = $4,
			location = $5,
			latitude = $6,
			longitude = $7,
			last_updated = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.InformerName,
		incident.ContactNumber,
		incident.AnimalType,
		incident.Description,
		incident.Location,
		incident.Latitude,
		incident.Longitude,
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d: %w", incident.ID, service.ErrNotFound)
	}
	return r.invalidateIncidentCache(ctx, incident.ID)
}

// UpdateLocation корректирует координаты, не трогая отметку последнего обновления
func (r *IncidentRepository) UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE incidents SET latitude = $1, longitude = $2 WHERE id = $3;`,
		latitude, longitude, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
	}
	return r.invalidateIncidentCache(ctx, id)
}

// UpdateStatus меняет статус инцидента. Причина закрытия записывается
// как есть: nil снимает ее при возврате инцидента в работу.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id int64, status models.IncidentStatus, closingReason *string) error {
	query := `
		UPDATE incidents SET
			status = $1,
			closing_reason = $2,
			last_updated = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, closingReason, id)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
	}
	return r.invalidateIncidentCache(ctx, id)
}

func (r *IncidentRepository) IncrementCaseCount(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE incidents SET case_count = case_count + 1 WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to increment incident case count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
	}
	return r.invalidateIncidentCache(ctx, id)
}

// Delete безвозвратно удаляет инцидент вместе с его выездами
func (r *IncidentRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM rescue_cases WHERE incident_id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete incident cases: %w", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return r.invalidateIncidentCache(ctx, id)
}

// GetCaseChatGroupIDs возвращает идентификаторы чатов всех выездов инцидента
func (r *IncidentRepository) GetCaseChatGroupIDs(ctx context.Context, incidentID int64) ([]string, error) {
	query := `SELECT chat_group_id FROM rescue_cases WHERE incident_id = $1 AND chat_group_id IS NOT NULL;`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list case chat groups: %w", err)
	}
	defer rows.Close()

	chatGroupIDs := make([]string, 0)
	for rows.Next() {
		var chatGroupID string
		if err := rows.Scan(&chatGroupID); err != nil {
			return nil, fmt.Errorf("failed to scan chat group row: %w", err)
		}
		chatGroupIDs = append(chatGroupIDs, chatGroupID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return chatGroupIDs, nil
}

// ListCaseHistory возвращает закрытые выезды инцидента с составами команд
func (r *IncidentRepository) ListCaseHistory(ctx context.Context, incidentID int64) ([]*models.CaseHistory, error) {
	query := `
		SELECT rc.id, t.name, u.first_name, rc.resolution_notes, rc.closed_at
		FROM rescue_cases rc
		JOIN teams t ON t.id = rc.team_id
		LEFT JOIN users u ON u.id = rc.assigned_by_user_id
		WHERE rc.incident_id = $1 AND NOT rc.is_active
		ORDER BY rc.created_at;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list case history: %w", err)
	}
	defer rows.Close()

	history := make([]*models.CaseHistory, 0)
	for rows.Next() {
		entry := &models.CaseHistory{}
		var assignedBy *string
		if err := rows.Scan(&entry.CaseID, &entry.TeamName, &assignedBy, &entry.ResolutionNotes, &entry.ClosedAt); err != nil {
			return nil, fmt.Errorf("failed to scan case history row: %w", err)
		}
		if assignedBy != nil {
			entry.AssignedBy = *assignedBy
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	rows.Close()

	for _, entry := range history {
		var teamID int64
		err := r.db.QueryRow(ctx, `SELECT team_id FROM rescue_cases WHERE id = $1;`, entry.CaseID).Scan(&teamID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve case team: %w", err)
		}
		entry.Members, err = listTeamMembers(ctx, r.db, teamID)
		if err != nil {
			return nil, err
		}
	}
	return history, nil
}

// CreateArchive сохраняет денормализованный снимок инцидента перед удалением
func (r *IncidentRepository) CreateArchive(ctx context.Context, archive *models.IncidentArchive) error {
	query := `
		INSERT INTO incident_archives (
			original_incident_id, informer_name, contact_number, location, animal_type,
			description, final_status, closing_reason, resolution_notes, involved_members, reported_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, archived_at;
	`
	err := r.db.QueryRow(ctx, query,
		archive.OriginalIncidentID,
		archive.InformerName,
		archive.ContactNumber,
		archive.Location,
		archive.AnimalType,
		archive.Description,
		archive.FinalStatus,
		archive.ClosingReason,
		archive.ResolutionNotes,
		archive.InvolvedMembers,
		archive.ReportedAt,
	).Scan(&archive.ID, &archive.ArchivedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident archive: %w", err)
	}
	return nil
}

func (r *IncidentRepository) AddMedia(ctx context.Context, media *models.IncidentMedia) error {
	query := `
		INSERT INTO incident_media (incident_id, case_id, file_path, media_type)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query, media.IncidentID, media.CaseID, media.FilePath, media.MediaType).Scan(&media.ID)
	if err != nil {
		return fmt.Errorf("failed to add incident media: %w", err)
	}
	return r.invalidateIncidentCache(ctx, media.IncidentID)
}

func (r *IncidentRepository) GetMediaByID(ctx context.Context, mediaID int64) (*models.IncidentMedia, error) {
	media := &models.IncidentMedia{}
	query := `SELECT id, incident_id, case_id, file_path, media_type FROM incident_media WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, mediaID).Scan(
		&media.ID,
		&media.IncidentID,
		&media.CaseID,
		&media.FilePath,
		&media.MediaType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("media with id %d: %w", mediaID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get media by id: %w", err)
	}
	return media, nil
}

func (r *IncidentRepository) ListMediaByIncident(ctx context.Context, incidentID int64) ([]*models.IncidentMedia, error) {
	query := `SELECT id, incident_id, case_id, file_path, media_type FROM incident_media WHERE incident_id = $1 ORDER BY id;`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident media: %w", err)
	}
	defer rows.Close()

	mediaFiles := make([]*models.IncidentMedia, 0)
	for rows.Next() {
		media := &models.IncidentMedia{}
		if err := rows.Scan(&media.ID, &media.IncidentID, &media.CaseID, &media.FilePath, &media.MediaType); err != nil {
			return nil, fmt.Errorf("failed to scan media row: %w", err)
		}
		mediaFiles = append(mediaFiles, media)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return mediaFiles, nil
}

func (r *IncidentRepository) DeleteMedia(ctx context.Context, mediaID int64) error {
	var incidentID int64
	err := r.db.QueryRow(ctx, `DELETE FROM incident_media WHERE id = $1 RETURNING incident_id;`, mediaID).Scan(&incidentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("media with id %d: %w", mediaID, service.ErrNotFound)
		}
		return fmt.Errorf("failed to delete media: %w", err)
	}
	return r.invalidateIncidentCache(ctx, incidentID)
}

func (r *IncidentRepository) DeleteAllMedia(ctx context.Context, incidentID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM incident_media WHERE incident_id = $1;`, incidentID); err != nil {
		return fmt.Errorf("failed to delete incident media: %w", err)
	}
	return r.invalidateIncidentCache(ctx, incidentID)
}

// AddInterest отмечает интерес волонтера, повторная отметка не ошибка
func (r *IncidentRepository) AddInterest(ctx context.Context, incidentID, userID int64) error {
	query := `
		INSERT INTO incident_interests (incident_id, user_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, incidentID, userID); err != nil {
		return fmt.Errorf("failed to add interest: %w", err)
	}
	return r.invalidateIncidentCache(ctx, incidentID)
}

func (r *IncidentRepository) RemoveInterest(ctx context.Context, incidentID, userID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM incident_interests WHERE incident_id = $1 AND user_id = $2;`, incidentID, userID); err != nil {
		return fmt.Errorf("failed to remove interest: %w", err)
	}
	return r.invalidateIncidentCache(ctx, incidentID)
}

func (r *IncidentRepository) RemoveAllInterests(ctx context.Context, incidentID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM incident_interests WHERE incident_id = $1;`, incidentID); err != nil {
		return fmt.Errorf("failed to remove interests: %w", err)
	}
	return r.invalidateIncidentCache(ctx, incidentID)
}

func (r *IncidentRepository) listInterestedUsers(ctx context.Context, incidentID int64) ([]*models.InterestedUser, error) {
	query := `
		SELECT ii.user_id, u.first_name
		FROM incident_interests ii
		JOIN users u ON u.id = ii.user_id
		WHERE ii.incident_id = $1
		ORDER BY u.first_name;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interested users: %w", err)
	}
	defer rows.Close()

	interested := make([]*models.InterestedUser, 0)
	for rows.Next() {
		iu := &models.InterestedUser{}
		if err := rows.Scan(&iu.UserID, &iu.FirstName); err != nil {
			return nil, fmt.Errorf("failed to scan interested user row: %w", err)
		}
		interested = append(interested, iu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return interested, nil
}

// getIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) getIncidentFromCache(ctx context.Context, id int64) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// setIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) setIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%d", incident.ID)
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// invalidateIncidentCache удаляет инцидент из Redis кэша после изменения
func (r *IncidentRepository) invalidateIncidentCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("incident:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
