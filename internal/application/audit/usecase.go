package audit

import (
	"context"
	"time"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// AuditUseCase expone el log de acciones en solo lectura. El log lo escriben
// los demás casos de uso dentro de sus transacciones; aquí solo se consulta.
type AuditUseCase struct {
	logRepo repository.ActionLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(logRepo repository.ActionLogRepository) *AuditUseCase {
	return &AuditUseCase{logRepo: logRepo}
}

// ListByPeriod lista las entradas de un rango de fechas, más recientes
// primero.
func (uc *AuditUseCase) ListByPeriod(ctx context.Context, from, to time.Time, page dto.PageRequest) ([]dto.ActionLogEntryResponse, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	entries, err := uc.logRepo.ListByPeriod(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toResponses(entries), nil
}

// ListByActor lista las entradas de un usuario, más recientes primero.
func (uc *AuditUseCase) ListByActor(ctx context.Context, actorID string, page dto.PageRequest) ([]dto.ActionLogEntryResponse, error) {
	if actorID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	entries, err := uc.logRepo.ListByActor(actorID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toResponses(entries), nil
}

func toResponses(entries []*entity.ActionLogEntry) []dto.ActionLogEntryResponse {
	out := make([]dto.ActionLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActionLogEntryResponse{
			ID:            e.ID,
			ActorID:       e.ActorID,
			OccurredAt:    e.OccurredAt,
			Kind:          e.Kind,
			Description:   e.Description,
			AffectedTable: e.AffectedTable,
			AffectedID:    e.AffectedID,
		})
	}
	return out
}
