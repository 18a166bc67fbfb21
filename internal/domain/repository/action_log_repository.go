package repository

import (
	"time"

	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// ActionLogRepository define el puerto del log de acciones. Append-only:
// no hay Update ni Delete, y la lógica de negocio solo escribe.
type ActionLogRepository interface {
	Create(entry *entity.ActionLogEntry) error
	ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.ActionLogEntry, error)
	ListByActor(actorID string, limit, offset int) ([]*entity.ActionLogEntry, error)
}
