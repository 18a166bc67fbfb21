package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	UpdateTotal(id string, total decimal.Decimal) error
	UpdatePayment(id, paymentMethod string) error
	UpdateStatus(id, status string) error
	CreateLine(line *entity.SaleLine) error
	ListLines(saleID string) ([]*entity.SaleLine, error)
	// SumLines devuelve SUM(quantity * unit_price) de las líneas de la venta;
	// el total se recalcula siempre desde cero, nunca se acumula.
	SumLines(saleID string) (decimal.Decimal, error)
	ListByPeriod(from, to time.Time) ([]*entity.Sale, error)
}
