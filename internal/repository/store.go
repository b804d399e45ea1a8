package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/idealhome/idealhome-api/internal/models"
	appErrors "github.com/idealhome/idealhome-api/pkg/errors"
	"github.com/idealhome/idealhome-api/pkg/kvstore"
)

// DefaultStoreKey is the storage slot the ledger document lives under.
const DefaultStoreKey = "scienceIdealHome.v1"

// ErrNotFound is returned by lookups and updates targeting an unknown
// identifier. The collections are left untouched in that case.
var ErrNotFound = errors.New("repository: record not found")

// SaveObserver receives persistence events for instrumentation.
type SaveObserver interface {
	ObserveSave(sizeBytes int, duration time.Duration)
	RecordMutation(entity string)
	RecordSeed()
}

// Store is the single source of truth for all ledger collections. It
// holds the document in memory and writes the whole document back to the
// key-value slot after every completed mutation, so the persisted state
// always matches the last mutation that ran.
type Store struct {
	mu     sync.RWMutex
	kv     kvstore.Provider
	key    string
	strict bool
	logger *zap.Logger
	obs    SaveObserver
	now    func() time.Time
	doc    models.Document
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps and month keys.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithStrictLoad makes Load surface a typed error when the persisted
// document is malformed instead of silently starting from an empty store.
func WithStrictLoad(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

// WithObserver attaches a persistence instrumentation sink.
func WithObserver(obs SaveObserver) Option {
	return func(s *Store) { s.obs = obs }
}

// NewStore constructs a Store over the given provider and slot key.
func NewStore(kv kvstore.Provider, key string, logger *zap.Logger, opts ...Option) *Store {
	if key == "" {
		key = DefaultStoreKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		kv:     kv,
		key:    key,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc.Normalize()
	return s
}

// Load reads the document from the slot. An absent value yields empty
// collections. A malformed value is treated as absent unless strict mode
// is on, in which case a CORRUPT_DOCUMENT error is returned and the store
// stays empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = models.Document{}
	s.doc.Normalize()

	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to read persisted document")
	}
	if !ok {
		return nil
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		if s.strict {
			return appErrors.Wrap(err, appErrors.ErrCorruptDocument.Code, appErrors.ErrCorruptDocument.Status, "persisted document is corrupt")
		}
		s.logger.Warn("persisted document is corrupt, starting empty", zap.String("key", s.key), zap.Error(err))
		return nil
	}

	doc.Normalize()
	s.doc = doc
	return nil
}

// SeedIfEmpty populates the example ledger when both the student and the
// staff/expense collections are empty, then persists immediately. The
// emptiness check is the only guard, so running it again is a no-op.
func (s *Store) SeedIfEmpty(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.doc.Students) > 0 || len(s.doc.StaffExpenses) > 0 {
		return false, nil
	}

	seedDocument(&s.doc, s.now())
	if err := s.save(ctx); err != nil {
		return false, err
	}
	if s.obs != nil {
		s.obs.RecordSeed()
	}
	s.logger.Info("seeded example ledger", zap.Int("students", len(s.doc.Students)))
	return true, nil
}

// View runs fn with read access to the document.
func (s *Store) View(fn func(doc *models.Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.doc)
}

// Mutate runs fn with exclusive access to the document and persists the
// whole document afterwards. When fn or the write fails the document is
// restored to its pre-mutation state, so memory never drifts ahead of
// the persisted slot.
func (s *Store) Mutate(ctx context.Context, entity string, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.doc.Clone()
	if err := fn(&s.doc); err != nil {
		s.doc = snapshot
		return err
	}
	if err := s.save(ctx); err != nil {
		s.doc = snapshot
		return err
	}
	if s.obs != nil {
		s.obs.RecordMutation(entity)
	}
	return nil
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// save serializes the whole document into the slot. Callers hold the
// write lock. Write failures propagate; there is no retry.
func (s *Store) save(ctx context.Context) error {
	start := s.now()
	data, err := json.Marshal(s.doc)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to serialize document")
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to persist document")
	}
	if s.obs != nil {
		s.obs.ObserveSave(len(data), s.now().Sub(start))
	}
	return nil
}
