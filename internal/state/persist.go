package state

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/sadopc/gpacalc/internal/gpa"
)

// StorageKey is the blob key holding the persisted state.
const StorageKey = "gpa-calculator-data"

// BlobStore is a string key/value store.
type BlobStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

type snapshot struct {
	Subjects  []gpa.Subject  `json:"subjects"`
	Semesters []gpa.Semester `json:"semesters"`
	DarkMode  bool           `json:"darkMode"`
}

// Encode serializes the persisted fields of s. CurrentView is not included.
func Encode(s State) (string, error) {
	snap := snapshot{
		Subjects:  s.Subjects,
		Semesters: s.Semesters,
		DarkMode:  s.DarkMode,
	}
	if snap.Subjects == nil {
		snap.Subjects = []gpa.Subject{}
	}
	if snap.Semesters == nil {
		snap.Semesters = []gpa.Semester{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted blob. Fields missing from the blob stay nil.
func Decode(blob string) (Partial, error) {
	var p Partial
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return Partial{}, fmt.Errorf("decode state: %w", err)
	}
	return p, nil
}

func persistedChanged(prev, next State) bool {
	return prev.DarkMode != next.DarkMode ||
		!slices.Equal(prev.Subjects, next.Subjects) ||
		!slices.Equal(prev.Semesters, next.Semesters)
}

// Hydrate merges the saved blob into st. Missing or unreadable data leaves
// st untouched; the reason is logged. It reports whether data was loaded.
// Call it before subscribing a Persister so the load is not written back.
func Hydrate(st *Store, blobs BlobStore, logger log.Logger) bool {
	blob, ok, err := blobs.Get(StorageKey)
	if err != nil {
		level.Warn(logger).Log("msg", "read saved state", "key", StorageKey, "err", err)
		return false
	}
	if !ok {
		level.Debug(logger).Log("msg", "no saved state", "key", StorageKey)
		return false
	}
	p, err := Decode(blob)
	if err != nil {
		level.Warn(logger).Log("msg", "discarding malformed saved state", "key", StorageKey, "err", err)
		return false
	}
	next := st.Dispatch(LoadFromStorage{Data: p})
	level.Info(logger).Log("msg", "state restored", "subjects", len(next.Subjects), "semesters", len(next.Semesters))
	return true
}

// Persister writes the persisted fields to a BlobStore after every change.
// Writes run on a single background goroutine, so a caller never waits on
// storage. Each write replaces the whole blob, so while a write is in flight
// only the newest pending snapshot is kept.
type Persister struct {
	blobs  BlobStore
	logger log.Logger

	mu      sync.Mutex
	closed  bool
	pending string
	dirty   bool
	wake    chan struct{}
	done    chan struct{}
}

// NewPersister starts the writer goroutine. Close stops it.
func NewPersister(blobs BlobStore, logger log.Logger) *Persister {
	p := &Persister{
		blobs:  blobs,
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *Persister) run() {
	defer close(p.done)
	for range p.wake {
		p.flush()
	}
	p.flush()
}

func (p *Persister) flush() {
	p.mu.Lock()
	blob, ok := p.pending, p.dirty
	p.pending, p.dirty = "", false
	p.mu.Unlock()
	if !ok {
		return
	}
	if err := p.blobs.Set(StorageKey, blob); err != nil {
		level.Error(p.logger).Log("msg", "save state", "key", StorageKey, "err", err)
	}
}

// Observe is an Observer. It schedules a save when subjects, semesters or
// dark mode changed between prev and next. It never blocks.
func (p *Persister) Observe(prev, next State) {
	if !persistedChanged(prev, next) {
		return
	}
	blob, err := Encode(next)
	if err != nil {
		level.Error(p.logger).Log("msg", "encode state", "err", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		level.Warn(p.logger).Log("msg", "state change after persister closed; not saved")
		return
	}
	p.pending, p.dirty = blob, true
	select {
	case p.wake <- struct{}{}:
	default: // writer already signalled
	}
}

// Close writes any pending snapshot and stops the writer. It is safe to
// call more than once.
func (p *Persister) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.wake)
	}
	p.mu.Unlock()
	<-p.done
	return nil
}

// Open returns a hydrated store whose changes are saved to blobs.
func Open(blobs BlobStore, logger log.Logger) (*Store, *Persister) {
	st := NewStore()
	Hydrate(st, blobs, logger)
	p := NewPersister(blobs, logger)
	st.Subscribe(p.Observe)
	return st, p
}
