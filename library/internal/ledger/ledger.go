// Package ledger keeps per-user fine balances.
//
// Every balance change is a single Compute on the user's key, so updates to
// one user are atomic and updates to different users do not block each
// other. A balance that drops to zero or below is deleted, never stored.
package ledger

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/shopspring/decimal"
)

type Ledger struct {
	finePerDay decimal.Decimal
	fines      *xsync.MapOf[int, decimal.Decimal]
}

// New returns a ledger charging finePerDay for each overdue day. A negative
// rate is treated as zero.
func New(finePerDay decimal.Decimal) *Ledger {
	if finePerDay.IsNegative() {
		finePerDay = decimal.Zero
	}
	return &Ledger{
		finePerDay: finePerDay,
		fines:      xsync.NewMapOf[int, decimal.Decimal](),
	}
}

func (l *Ledger) FinePerDay() decimal.Decimal {
	return l.finePerDay
}

// AddFine charges overdueDays times the daily rate. The product of a decimal
// and a whole day count is exact, so no rounding happens here.
func (l *Ledger) AddFine(userID int, overdueDays int64) {
	if overdueDays <= 0 {
		return
	}
	fine := l.finePerDay.Mul(decimal.NewFromInt(overdueDays))
	if !fine.IsPositive() {
		return
	}
	l.fines.Compute(userID, func(balance decimal.Decimal, _ bool) (decimal.Decimal, bool) {
		return balance.Add(fine), false
	})
}

func (l *Ledger) GetFine(userID int) decimal.Decimal {
	balance, ok := l.fines.Load(userID)
	if !ok {
		return decimal.Zero
	}
	return balance
}

// PayFine subtracts amount from the user's balance and drops the entry once
// it is paid off. Unknown users and non-positive amounts are ignored.
func (l *Ledger) PayFine(userID int, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	l.fines.Compute(userID, func(balance decimal.Decimal, loaded bool) (decimal.Decimal, bool) {
		if !loaded {
			return balance, true
		}
		remaining := balance.Sub(amount)
		if !remaining.IsPositive() {
			return decimal.Zero, true
		}
		return remaining, false
	})
}

// Debtors lists users with an outstanding balance in ascending id order.
func (l *Ledger) Debtors() []int {
	users := make([]int, 0, l.fines.Size())
	l.fines.Range(func(userID int, _ decimal.Decimal) bool {
		users = append(users, userID)
		return true
	})
	sort.Ints(users)
	return users
}
