package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pago aceptadas en caja.
const (
	PaymentCash       = "CASH"
	PaymentCreditCard = "CREDIT_CARD"
	PaymentDebitCard  = "DEBIT_CARD"
	PaymentPix        = "PIX"
)

// Estados de una venta.
const (
	SaleStatusFinalized = "FINALIZED"
	SaleStatusCancelled = "CANCELLED"
)

// Sale representa una venta de mostrador. Se crea con total 0 y sin forma de
// pago; queda cerrada (inmutable en sus líneas) cuando se registra la forma de
// pago. Total siempre se recalcula desde las líneas, nunca se acumula.
type Sale struct {
	ID            string
	OccurredAt    time.Time
	OperatorID    string // UserID del cajero
	CustomerName  string
	CustomerTaxID string // CPF, opcional
	Total         decimal.Decimal
	PaymentMethod string // vacío mientras la venta sigue abierta
	Status        string
	Notes         string
}

// Closed indica si la venta ya registró forma de pago; sus líneas son inmutables.
func (s *Sale) Closed() bool {
	return s.PaymentMethod != ""
}

// ValidPaymentMethod verifica que la forma de pago sea una de las aceptadas.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix:
		return true
	}
	return false
}

// SaleLine es una línea de venta. Referencia (sin poseer) el StockItem asignado
// y, desnormalizada, su nota de entrada de origen. UnitPrice se copia del ítem
// al momento de la venta: cambios de precio posteriores no alteran históricos.
type SaleLine struct {
	ID          string
	SaleID      string
	StockItemID string
	BatchID     string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Total devuelve quantity * unit_price.
func (l *SaleLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
