package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"

	"github.com/Astemirdum/libranet/library/internal/errs"
	"github.com/Astemirdum/libranet/library/internal/item"
	"github.com/Astemirdum/libranet/library/internal/model"
)

// Repository is the item catalog.
type Repository interface {
	AddItem(ctx context.Context, it *item.Item) error
	FindByID(ctx context.Context, id int) (*item.Item, error)
	SearchByTitle(ctx context.Context, query string) []*item.Item
	SearchByKind(ctx context.Context, kind model.Kind) []*item.Item
}

type repository struct {
	items *xsync.MapOf[int, *item.Item]
	log   *zap.Logger
}

func NewRepository(log *zap.Logger) *repository {
	return &repository{
		items: xsync.NewMapOf[int, *item.Item](),
		log:   log.Named("repo"),
	}
}

// AddItem stores it under its id, replacing any item already there.
func (r *repository) AddItem(_ context.Context, it *item.Item) error {
	if it == nil {
		return errors.Wrap(errs.ErrInvalidArgument, "nil item")
	}
	if _, replaced := r.items.LoadAndStore(it.ID(), it); replaced {
		r.log.Warn("AddItem: replaced", zap.Int("id", it.ID()))
	}
	return nil
}

func (r *repository) FindByID(_ context.Context, id int) (*item.Item, error) {
	it, ok := r.items.Load(id)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "item %d", id)
	}
	return it, nil
}

// SearchByTitle matches a case-insensitive substring of the title. An empty
// query matches every item.
func (r *repository) SearchByTitle(_ context.Context, query string) []*item.Item {
	q := strings.ToLower(query)
	return r.filter(func(it *item.Item) bool {
		return strings.Contains(strings.ToLower(it.Title()), q)
	})
}

func (r *repository) SearchByKind(_ context.Context, kind model.Kind) []*item.Item {
	return r.filter(func(it *item.Item) bool {
		return it.Kind() == kind
	})
}

func (r *repository) filter(match func(*item.Item) bool) []*item.Item {
	var out []*item.Item
	r.items.Range(func(_ int, it *item.Item) bool {
		if match(it) {
			out = append(out, it)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
