package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindBook      Kind = "BOOK"
	KindAudiobook Kind = "AUDIOBOOK"
	KindEMagazine Kind = "EMAGAZINE"
)

func (k Kind) String() string {
	return string(k)
}

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBorrowed  Status = "BORROWED"
)

// Loan is the active loan of a borrowed item.
type Loan struct {
	LoanUid    uuid.UUID `json:"loanUid"`
	UserID     int       `json:"userId"`
	BorrowedAt time.Time `json:"borrowedAt"`
	DueAt      time.Time `json:"dueAt"`
}

type ItemInfo struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Kind   Kind   `json:"kind"`
	Status Status `json:"status"`
	Loan   *Loan  `json:"loan,omitempty"`
}

type ReturnReceipt struct {
	ItemID      int             `json:"itemId"`
	UserID      int             `json:"userId"`
	OverdueDays int64           `json:"overdueDays"`
	Balance     decimal.Decimal `json:"balance"`
}
