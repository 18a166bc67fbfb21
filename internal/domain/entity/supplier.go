package entity

import "time"

// Supplier representa un proveedor que entrega mercancía en consignación.
// La baja es lógica (Active=false); nunca se elimina la fila.
type Supplier struct {
	ID        string
	Name      string
	CNPJ      string // identificación fiscal, única en el sistema
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
