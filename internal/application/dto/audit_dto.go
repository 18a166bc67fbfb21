package dto

import "time"

// ActionLogEntryResponse entrada del log de acciones para la vista de
// auditoría.
type ActionLogEntryResponse struct {
	ID            string    `json:"id"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
	Kind          string    `json:"kind"`
	Description   string    `json:"description"`
	AffectedTable string    `json:"affected_table"`
	AffectedID    string    `json:"affected_id"`
}
