package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

var _ repository.ActionLogRepository = (*ActionLogRepo)(nil)

const actionLogColumns = `id, actor_id, occurred_at, kind, description, affected_table, affected_id`

// ActionLogRepo implementación de ActionLogRepository sobre PostgreSQL.
// Append-only: solo INSERT y SELECT.
type ActionLogRepo struct {
	q Querier
}

func NewActionLogRepository(q Querier) *ActionLogRepo {
	return &ActionLogRepo{q: q}
}

func (r *ActionLogRepo) Create(entry *entity.ActionLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO action_log (` + actionLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ActorID, entry.OccurredAt, entry.Kind,
		entry.Description, entry.AffectedTable, entry.AffectedID,
	)
	if err != nil {
		return fmt.Errorf("insert action log: %w", err)
	}
	return nil
}

func (r *ActionLogRepo) ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.ActionLogEntry, error) {
	query := `
		SELECT ` + actionLogColumns + ` FROM action_log
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY occurred_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, from, to, limit, offset)
}

func (r *ActionLogRepo) ListByActor(actorID string, limit, offset int) ([]*entity.ActionLogEntry, error) {
	query := `
		SELECT ` + actionLogColumns + ` FROM action_log
		WHERE actor_id = $1
		ORDER BY occurred_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, actorID, limit, offset)
}

func (r *ActionLogRepo) list(query string, args ...any) ([]*entity.ActionLogEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list action log: %w", err)
	}
	defer rows.Close()
	var out []*entity.ActionLogEntry
	for rows.Next() {
		var e entity.ActionLogEntry
		if err := rows.Scan(
			&e.ID, &e.ActorID, &e.OccurredAt, &e.Kind,
			&e.Description, &e.AffectedTable, &e.AffectedID,
		); err != nil {
			return nil, fmt.Errorf("scan action log: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
