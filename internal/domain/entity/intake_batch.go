package entity

import "time"

// Estados de una nota de entrada.
const (
	BatchStatusActive    = "ACTIVE"    // admite agregar ítems
	BatchStatusFinalized = "FINALIZED" // cerrada; referenciable para devoluciones
	BatchStatusReturned  = "RETURNED"  // toda la mercancía devuelta al proveedor
)

// IntakeBatch representa una nota de entrada: una entrega de mercancía de un
// proveedor. El número de nota es único por proveedor. Solo se agregan ítems
// mientras el estado sea ACTIVE; FINALIZED es terminal para adiciones.
type IntakeBatch struct {
	ID           string
	BatchNumber  string
	SupplierID   string
	IssueDate    time.Time // fecha de emisión, clave primaria del orden FIFO
	RegisteredAt time.Time
	Status       string
	RegisteredBy string // UserID
	Notes        string
}
