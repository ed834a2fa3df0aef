package item

import (
	"sync/atomic"
	"time"

	"github.com/Astemirdum/libranet/library/internal/model"
)

// Playable is implemented by items that can be listened to.
type Playable interface {
	Play()
	Pause()
	IsPlaying() bool
	PlaybackDuration() time.Duration
}

type Book struct {
	pageCount int
}

func (b *Book) PageCount() int { return b.pageCount }

type Audiobook struct {
	playback time.Duration
	playing  atomic.Bool
}

var _ Playable = (*Audiobook)(nil)

func (a *Audiobook) Play()                           { a.playing.Store(true) }
func (a *Audiobook) Pause()                          { a.playing.Store(false) }
func (a *Audiobook) IsPlaying() bool                 { return a.playing.Load() }
func (a *Audiobook) PlaybackDuration() time.Duration { return a.playback }

type EMagazine struct {
	issueNumber string
	archived    atomic.Bool
}

func (m *EMagazine) IssueNumber() string { return m.issueNumber }
func (m *EMagazine) Archive()            { m.archived.Store(true) }
func (m *EMagazine) IsArchived() bool    { return m.archived.Load() }

type bookFields struct {
	Title     string `validate:"required"`
	Author    string `validate:"required"`
	PageCount int    `validate:"gte=0"`
}

type audiobookFields struct {
	Title    string        `validate:"required"`
	Author   string        `validate:"required"`
	Playback time.Duration `validate:"gte=0"`
}

type emagazineFields struct {
	Title       string `validate:"required"`
	Author      string `validate:"required"`
	IssueNumber string `validate:"required"`
}

func NewBook(id int, title, author string, pageCount int, opts ...Option) (*Item, error) {
	if err := check(bookFields{Title: title, Author: author, PageCount: pageCount}); err != nil {
		return nil, err
	}
	it := newItem(id, title, author, model.KindBook, opts)
	it.book = &Book{pageCount: pageCount}
	return it, nil
}

func NewAudiobook(id int, title, author string, playback time.Duration, opts ...Option) (*Item, error) {
	if err := check(audiobookFields{Title: title, Author: author, Playback: playback}); err != nil {
		return nil, err
	}
	it := newItem(id, title, author, model.KindAudiobook, opts)
	it.audiobook = &Audiobook{playback: playback}
	return it, nil
}

func NewEMagazine(id int, title, author, issueNumber string, opts ...Option) (*Item, error) {
	if err := check(emagazineFields{Title: title, Author: author, IssueNumber: issueNumber}); err != nil {
		return nil, err
	}
	it := newItem(id, title, author, model.KindEMagazine, opts)
	it.magazine = &EMagazine{issueNumber: issueNumber}
	return it, nil
}

func (it *Item) Book() (*Book, bool) {
	return it.book, it.book != nil
}

func (it *Item) Audiobook() (*Audiobook, bool) {
	return it.audiobook, it.audiobook != nil
}

func (it *Item) EMagazine() (*EMagazine, bool) {
	return it.magazine, it.magazine != nil
}

// Playable reports whether the item can be played; only audiobooks can.
func (it *Item) Playable() (Playable, bool) {
	if it.audiobook == nil {
		return nil, false
	}
	return it.audiobook, true
}
