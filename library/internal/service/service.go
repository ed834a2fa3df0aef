package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/libranet/library/internal/errs"
	"github.com/Astemirdum/libranet/library/internal/item"
	"github.com/Astemirdum/libranet/library/internal/model"
	"github.com/Astemirdum/libranet/library/internal/repository"
)

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	ledger  FineLedger
	metrics *Metrics
}

func NewService(repo repository.Repository, ledger FineLedger, metrics *Metrics, log *zap.Logger) *Service {
	return &Service{
		log:     log.Named("service"),
		repo:    repo,
		ledger:  ledger,
		metrics: metrics,
	}
}

func (s *Service) AddItem(ctx context.Context, it *item.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.repo.AddItem(ctx, it); err != nil {
		return err
	}
	s.log.Debug("item added",
		zap.Int("id", it.ID()),
		zap.String("title", it.Title()),
		zap.Stringer("kind", it.Kind()))
	return nil
}

func (s *Service) GetItem(ctx context.Context, id int) (*item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) SearchByTitle(ctx context.Context, query string) ([]*item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.SearchByTitle(ctx, query), nil
}

func (s *Service) SearchByKind(ctx context.Context, kind model.Kind) ([]*item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.SearchByKind(ctx, kind), nil
}

func (s *Service) Borrow(ctx context.Context, itemID, userID int, durationText string) (model.Loan, error) {
	if err := ctx.Err(); err != nil {
		return model.Loan{}, err
	}
	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return model.Loan{}, err
	}

	loan, err := it.Borrow(userID, durationText)
	if err != nil {
		s.metrics.borrowed(err)
		s.log.Info("borrow rejected",
			zap.Int("item", itemID),
			zap.Int("user", userID),
			zap.String("duration", durationText),
			zap.Error(err))
		return model.Loan{}, err
	}
	s.metrics.borrowed(nil)
	s.log.Info("borrowed",
		zap.Int("item", itemID),
		zap.Int("user", userID),
		zap.Stringer("loan", loan.LoanUid),
		zap.Time("dueAt", loan.DueAt))
	return loan, nil
}

// Return closes the item's loan and charges the borrower for every overdue
// day. Returning an item that is not borrowed yields an empty receipt.
func (s *Service) Return(ctx context.Context, itemID int) (model.ReturnReceipt, error) {
	if err := ctx.Err(); err != nil {
		return model.ReturnReceipt{}, err
	}
	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return model.ReturnReceipt{}, err
	}

	loan, overdueDays, ok := it.ReturnLoan()
	if !ok {
		s.log.Debug("return of available item", zap.Int("item", itemID))
		return model.ReturnReceipt{ItemID: itemID, Balance: decimal.Zero}, nil
	}
	s.ledger.AddFine(loan.UserID, overdueDays)
	s.metrics.returned(overdueDays)

	receipt := model.ReturnReceipt{
		ItemID:      itemID,
		UserID:      loan.UserID,
		OverdueDays: overdueDays,
		Balance:     s.ledger.GetFine(loan.UserID),
	}
	s.log.Info("returned",
		zap.Int("item", itemID),
		zap.Int("user", loan.UserID),
		zap.Stringer("loan", loan.LoanUid),
		zap.Int64("overdueDays", overdueDays),
		zap.Stringer("balance", receipt.Balance))
	return receipt, nil
}

func (s *Service) GetFine(ctx context.Context, userID int) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	return s.ledger.GetFine(userID), nil
}

// PayFine settles amount against the user's balance and returns what is
// left to pay.
func (s *Service) PayFine(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, errors.Wrapf(errs.ErrInvalidArgument, "negative payment %s", amount)
	}
	s.ledger.PayFine(userID, amount)
	s.metrics.paid(amount)

	left := s.ledger.GetFine(userID)
	s.log.Info("fine paid",
		zap.Int("user", userID),
		zap.Stringer("amount", amount),
		zap.Stringer("balance", left))
	return left, nil
}
