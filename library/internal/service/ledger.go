package service

import (
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/libranet/library/internal/ledger"
)

//go:generate go run github.com/golang/mock/mockgen -source=ledger.go -destination=mocks/mock.go

type FineLedger interface {
	AddFine(userID int, overdueDays int64)
	GetFine(userID int) decimal.Decimal
	PayFine(userID int, amount decimal.Decimal)
}

var _ FineLedger = (*ledger.Ledger)(nil)
