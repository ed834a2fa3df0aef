package service

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/libranet/library/internal/errs"
)

const (
	resultOK              = "ok"
	resultNotAvailable    = "not_available"
	resultInvalidDuration = "invalid_duration"
	resultOther           = "error"

	outcomeOnTime  = "on_time"
	outcomeOverdue = "overdue"
)

type Metrics struct {
	borrows     *prometheus.CounterVec
	returns     *prometheus.CounterVec
	overdueDays prometheus.Counter
	finesPaid   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		borrows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "libranet_borrows_total",
			Help: "Borrow attempts by result.",
		}, []string{"result"}),
		returns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "libranet_returns_total",
			Help: "Returns of borrowed items by outcome.",
		}, []string{"outcome"}),
		overdueDays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "libranet_overdue_days_total",
			Help: "Overdue days charged on return.",
		}),
		finesPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "libranet_fines_paid_total",
			Help: "Sum of fine payments submitted.",
		}),
	}
	reg.MustRegister(m.borrows, m.returns, m.overdueDays, m.finesPaid)
	return m
}

func (m *Metrics) borrowed(err error) {
	if m == nil {
		return
	}
	result := resultOK
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrItemNotAvailable):
		result = resultNotAvailable
	case errors.Is(err, errs.ErrInvalidDuration):
		result = resultInvalidDuration
	default:
		result = resultOther
	}
	m.borrows.WithLabelValues(result).Inc()
}

func (m *Metrics) returned(overdueDays int64) {
	if m == nil {
		return
	}
	if overdueDays > 0 {
		m.returns.WithLabelValues(outcomeOverdue).Inc()
		m.overdueDays.Add(float64(overdueDays))
		return
	}
	m.returns.WithLabelValues(outcomeOnTime).Inc()
}

func (m *Metrics) paid(amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.finesPaid.Add(amount.InexactFloat64())
}
