package sales

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// SalesByPeriod lista las ventas cerradas (no canceladas) de un rango.
func (uc *SaleUseCase) SalesByPeriod(ctx context.Context, from, to time.Time) ([]dto.SalesPeriodRow, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.ListByPeriod(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesPeriodRow, 0, len(sales))
	for _, s := range sales {
		if s.Status != entity.SaleStatusFinalized || !s.Closed() {
			continue
		}
		out = append(out, dto.SalesPeriodRow{
			ID:            s.ID,
			OccurredAt:    s.OccurredAt,
			CustomerName:  s.CustomerName,
			Total:         s.Total,
			PaymentMethod: s.PaymentMethod,
		})
	}
	return out, nil
}

// DailySummary resume la caja de un día: total de ventas, recaudo y
// desagregado por forma de pago.
func (uc *SaleUseCase) DailySummary(ctx context.Context, day time.Time) (*dto.DailySummaryResponse, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	sales, err := uc.saleRepo.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}
	summary := &dto.DailySummaryResponse{
		Date:  start.Format("2006-01-02"),
		Total: decimal.Zero,
	}
	byPayment := map[string]*dto.PaymentBreakdown{}
	for _, s := range sales {
		if s.Status != entity.SaleStatusFinalized || !s.Closed() {
			continue
		}
		summary.Count++
		summary.Total = summary.Total.Add(s.Total)
		b, ok := byPayment[s.PaymentMethod]
		if !ok {
			b = &dto.PaymentBreakdown{PaymentMethod: s.PaymentMethod, Total: decimal.Zero}
			byPayment[s.PaymentMethod] = b
		}
		b.Count++
		b.Total = b.Total.Add(s.Total)
	}
	for _, b := range byPayment {
		summary.ByPayment = append(summary.ByPayment, *b)
	}
	sort.Slice(summary.ByPayment, func(i, j int) bool {
		return summary.ByPayment[i].PaymentMethod < summary.ByPayment[j].PaymentMethod
	})
	return summary, nil
}
