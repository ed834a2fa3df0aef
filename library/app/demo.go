package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/libranet/library/internal/duration"
	"github.com/Astemirdum/libranet/library/internal/errs"
	"github.com/Astemirdum/libranet/library/internal/item"
)

const (
	bookID      = 1
	audiobookID = 2
	magazineID  = 3

	racers = 8
)

func (a *App) seed(ctx context.Context) error {
	withClock := item.WithClock(a.clock)

	b1, err := item.NewBook(bookID, "Effective Java", "Joshua Bloch", 416, withClock)
	if err != nil {
		return err
	}
	a1, err := item.NewAudiobook(audiobookID, "Clean Code (Audio)", "Robert C. Martin", 12*time.Hour+30*time.Minute, withClock)
	if err != nil {
		return err
	}
	m1, err := item.NewEMagazine(magazineID, "Monthly Tech", "Various", "2025-09", withClock)
	if err != nil {
		return err
	}
	for _, it := range []*item.Item{b1, a1, m1} {
		if err := a.svc.AddItem(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

// Demo walks through the lending scenario: a loan, a refused second loan, a
// manual fine, an audiobook loan, archiving a magazine, duration parsing and
// a race for one magazine.
func (a *App) Demo(ctx context.Context) error {
	log := a.log.Named("demo")
	if err := a.seed(ctx); err != nil {
		return errors.Wrap(err, "seed")
	}

	loan, err := a.svc.Borrow(ctx, bookID, 1001, "14 days")
	if err != nil {
		return errors.Wrap(err, "borrow book")
	}
	log.Info("borrowed book", zap.Int("user", loan.UserID), zap.Time("dueAt", loan.DueAt))

	_, err = a.svc.Borrow(ctx, bookID, 1002, "7 days")
	if !errors.Is(err, errs.ErrItemNotAvailable) {
		return fmt.Errorf("second borrow of book: want %v, got %v", errs.ErrItemNotAvailable, err)
	}
	log.Info("second borrow refused", zap.Error(err))

	a.ledger.AddFine(1001, 3)
	fine, err := a.svc.GetFine(ctx, 1001)
	if err != nil {
		return err
	}
	log.Info("fine charged", zap.Int("user", 1001), zap.Stringer("balance", fine))

	if _, err = a.svc.Borrow(ctx, audiobookID, 1002, "3 days"); err != nil {
		return errors.Wrap(err, "borrow audiobook")
	}
	audio, err := a.svc.GetItem(ctx, audiobookID)
	if err != nil {
		return err
	}
	if p, ok := audio.Playable(); ok {
		p.Play()
		log.Info("playing", zap.String("title", audio.Title()), zap.Duration("playback", p.PlaybackDuration()))
	}

	mag, err := a.svc.GetItem(ctx, magazineID)
	if err != nil {
		return err
	}
	if m, ok := mag.EMagazine(); ok {
		m.Archive()
		log.Info("archived", zap.String("issue", m.IssueNumber()))
	}

	d, err := duration.Parse("1 day 5 hours 30 minutes")
	if err != nil {
		return err
	}
	log.Info("parsed duration", zap.Duration("duration", d))
	if _, err = duration.Parse("two weeks"); !errors.Is(err, errs.ErrInvalidDuration) {
		return fmt.Errorf("parse %q: want %v, got %v", "two weeks", errs.ErrInvalidDuration, err)
	}
	log.Info("invalid duration rejected", zap.Error(err))

	winner, err := a.race(ctx, magazineID)
	if err != nil {
		return errors.Wrap(err, "race")
	}
	log.Info("race won", zap.Int("item", magazineID), zap.Int("user", winner))
	return nil
}

// race lets several users borrow the same item at once; exactly one wins.
func (a *App) race(ctx context.Context, itemID int) (int, error) {
	var (
		winner atomic.Int64
		wins   atomic.Int32
	)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < racers; i++ {
		userID := 3000 + i
		g.Go(func() error {
			_, err := a.svc.Borrow(gctx, itemID, userID, a.cfg.Loan.DefaultDuration)
			switch {
			case err == nil:
				wins.Add(1)
				winner.Store(int64(userID))
				return nil
			case errors.Is(err, errs.ErrItemNotAvailable):
				return nil
			default:
				return err
			}
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if n := wins.Load(); n != 1 {
		return 0, fmt.Errorf("%d borrowers won item %d", n, itemID)
	}
	return int(winner.Load()), nil
}
