package postgres

import (
	"context"
	"fmt"

	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
type ActivityLogRepo struct {
	q Querier
}

func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create inserta una entrada del registro de actividad.
func (r *ActivityLogRepo) Create(entry *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_log (username, description, model, object_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		entry.User, entry.Description, entry.Model, entry.ObjectID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecent devuelve las entradas más recientes, paginadas.
func (r *ActivityLogRepo) ListRecent(limit, offset int) ([]*entity.ActivityLog, error) {
	query := `SELECT id, username, description, model, object_id, created_at
		FROM activity_log ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ActivityLog
	for rows.Next() {
		var e entity.ActivityLog
		if err := rows.Scan(&e.ID, &e.User, &e.Description, &e.Model, &e.ObjectID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
