package entity

import "time"

// Tipos de acción del log de auditoría.
const (
	ActionIntakeItem    = "INTAKE_ITEM"
	ActionSale          = "SALE"
	ActionReturn        = "RETURN"
	ActionLogin         = "LOGIN"
	ActionProductChange = "PRODUCT_CHANGE"
	ActionUserChange    = "USER_CHANGE"
)

// ActionLogEntry es una entrada del log de acciones: append-only, nunca se
// actualiza ni se borra, y la lógica de negocio jamás la consulta — solo la
// escribe, dentro de la misma transacción que la mutación que registra.
type ActionLogEntry struct {
	ID            string
	ActorID       string // UserID que ejecutó la acción
	OccurredAt    time.Time
	Kind          string
	Description   string
	AffectedTable string
	AffectedID    string
}
