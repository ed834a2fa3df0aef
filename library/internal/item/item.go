// Package item holds the borrow/return lifecycle shared by every kind of
// library item. Each Item guards its own loan with a mutex; distinct items
// never contend.
package item

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/Astemirdum/libranet/library/internal/duration"
	"github.com/Astemirdum/libranet/library/internal/errs"
	"github.com/Astemirdum/libranet/library/internal/model"
	"github.com/Astemirdum/libranet/pkg/validate"
)

type Option func(*Item)

// WithClock sets the time source for loan timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(it *Item) {
		if c != nil {
			it.clock = c
		}
	}
}

type Item struct {
	id     int
	title  string
	author string
	kind   model.Kind

	book      *Book
	audiobook *Audiobook
	magazine  *EMagazine

	clock clockwork.Clock

	mu   sync.Mutex
	loan *model.Loan // nil while available
}

func newItem(id int, title, author string, kind model.Kind, opts []Option) *Item {
	it := &Item{
		id:     id,
		title:  title,
		author: author,
		kind:   kind,
		clock:  clockwork.NewRealClock(),
	}
	for _, op := range opts {
		op(it)
	}
	return it
}

func check(fields interface{}) error {
	if err := validate.Struct(fields); err != nil {
		return errors.Wrap(errs.ErrInvalidArgument, err.Error())
	}
	return nil
}

func (it *Item) ID() int          { return it.id }
func (it *Item) Title() string    { return it.title }
func (it *Item) Author() string   { return it.author }
func (it *Item) Kind() model.Kind { return it.kind }

func (it *Item) IsAvailable() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.loan == nil
}

func (it *Item) BorrowedBy() (int, bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.loan == nil {
		return 0, false
	}
	return it.loan.UserID, true
}

func (it *Item) DueAt() (time.Time, bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.loan == nil {
		return time.Time{}, false
	}
	return it.loan.DueAt, true
}

func (it *Item) Info() model.ItemInfo {
	it.mu.Lock()
	defer it.mu.Unlock()
	info := model.ItemInfo{
		ID:     it.id,
		Title:  it.title,
		Author: it.author,
		Kind:   it.kind,
		Status: model.StatusAvailable,
	}
	if it.loan != nil {
		loan := *it.loan
		info.Status = model.StatusBorrowed
		info.Loan = &loan
	}
	return info
}

// Borrow lends the item to userID for the period written in durationText.
// A borrowed item fails with errs.ErrItemNotAvailable before the text is
// looked at; a bad text fails with errs.ErrInvalidDuration. Neither changes
// the item.
func (it *Item) Borrow(userID int, durationText string) (model.Loan, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.loan != nil {
		return model.Loan{}, errors.Wrapf(errs.ErrItemNotAvailable, "item %d", it.id)
	}
	d, err := duration.Parse(durationText)
	if err != nil {
		return model.Loan{}, err
	}

	now := it.clock.Now()
	it.loan = &model.Loan{
		LoanUid:    uuid.New(),
		UserID:     userID,
		BorrowedAt: now,
		DueAt:      now.Add(d),
	}
	return *it.loan, nil
}

// Return makes the item available again and reports how many days late it
// came back. Returning an available item is a no-op that reports 0.
func (it *Item) Return() int64 {
	_, days, _ := it.ReturnLoan()
	return days
}

// ReturnLoan is Return that also hands back the closed loan. ok is false
// when the item was not borrowed.
func (it *Item) ReturnLoan() (loan model.Loan, overdueDays int64, ok bool) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.loan == nil {
		return model.Loan{}, 0, false
	}
	loan = *it.loan
	overdueDays = OverdueDays(loan.DueAt, it.clock.Now())
	it.loan = nil
	return loan, overdueDays, true
}

// OverdueDays counts whole days from dueAt to now, rounding any partial day
// up. It is 0 unless now is strictly after dueAt.
func OverdueDays(dueAt, now time.Time) int64 {
	if !now.After(dueAt) {
		return 0
	}
	late := now.Sub(dueAt)
	days := int64(late / duration.Day)
	if late%duration.Day > 0 {
		days++
	}
	return days
}
