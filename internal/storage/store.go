package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/Veraticus/money-mastery/internal/model"
)

// Storage keys. The data key holds the serialized document; the others
// hold small independent pieces of state that must be readable before
// the document exists.
const (
	dataKey        = "money-mastery-data"
	currencyKey    = "money-mastery-currency"
	lastUpdatedKey = "money-mastery-last-updated"
	sessionKey     = "money-mastery-session"
)

// Session is the persisted identity of a signed-in user.
type Session struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// Store reads and writes the financial document and preference state.
// A save hook lets the sync coordinator observe document writes without
// the store depending on networking; the hook must not block.
//
// When the medium is unavailable every read degrades to a freshly seeded
// in-memory document and every write is a silent no-op, so callers behave
// identically whether storage exists or not.
type Store struct {
	kv     KV
	onSave func(model.FinancialData)
	now    func() time.Time
}

// NewStore creates a store over the given medium.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// WithClock overrides the store's time source.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// OnSave registers the hook fired after each successful document write.
func (s *Store) OnSave(fn func(model.FinancialData)) {
	s.onSave = fn
}

// Document returns the persisted document. If none exists it synthesizes
// a seeded default, persists it, and returns it; corrupted content falls
// back to a fresh default without being surfaced.
func (s *Store) Document(ctx context.Context) model.FinancialData {
	currency := s.Currency(ctx)

	raw, ok, err := s.kv.Get(ctx, dataKey)
	if err != nil {
		slog.Debug("storage unavailable, using in-memory defaults", "error", err)
		return model.DefaultData(s.now(), currency)
	}
	if !ok {
		doc := model.DefaultData(s.now(), currency)
		s.SaveDocument(ctx, doc)
		return doc
	}

	var doc model.FinancialData
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		slog.Warn("stored document corrupted, reseeding defaults", "error", err)
		return model.DefaultData(s.now(), currency)
	}
	return doc.Normalize(currency)
}

// SaveDocument overwrites the persisted document wholesale and fires the
// save hook. Persistence failures are swallowed: the call never blocks on
// network I/O and never fails due to sync or storage trouble.
func (s *Store) SaveDocument(ctx context.Context, doc model.FinancialData) {
	raw, err := json.Marshal(doc)
	if err != nil {
		slog.Error("failed to encode document", "error", err)
		return
	}
	if err := s.kv.Set(ctx, dataKey, string(raw)); err != nil {
		slog.Debug("document save skipped", "error", err)
		return
	}
	if s.onSave != nil {
		s.onSave(doc)
	}
}

// Currency returns the stored display currency preference.
func (s *Store) Currency(ctx context.Context) model.Currency {
	raw, ok, err := s.kv.Get(ctx, currencyKey)
	if err != nil || !ok {
		return model.DefaultCurrency
	}
	c := model.Currency(raw)
	if !c.Valid() {
		return model.DefaultCurrency
	}
	return c
}

// SetCurrency stores the display currency preference.
func (s *Store) SetCurrency(ctx context.Context, c model.Currency) {
	if err := s.kv.Set(ctx, currencyKey, string(c)); err != nil {
		slog.Debug("currency preference save skipped", "error", err)
	}
}

// LastSynced returns when this device last completed an explicit sync,
// or the zero time if it never has.
func (s *Store) LastSynced(ctx context.Context) time.Time {
	raw, ok, err := s.kv.Get(ctx, lastUpdatedKey)
	if err != nil || !ok {
		return time.Time{}
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}

// SetLastSynced records the local sync timestamp as epoch milliseconds.
func (s *Store) SetLastSynced(ctx context.Context, t time.Time) {
	if err := s.kv.Set(ctx, lastUpdatedKey, strconv.FormatInt(t.UnixMilli(), 10)); err != nil {
		slog.Debug("last-synced save skipped", "error", err)
	}
}

// Session returns the persisted sign-in session, or nil when signed out.
func (s *Store) Session(ctx context.Context) *Session {
	raw, ok, err := s.kv.Get(ctx, sessionKey)
	if err != nil || !ok {
		return nil
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		slog.Warn("stored session corrupted, treating as signed out", "error", err)
		return nil
	}
	if sess.UserID == "" {
		return nil
	}
	return &sess
}

// SetSession persists the sign-in session.
func (s *Store) SetSession(ctx context.Context, sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, sessionKey, string(raw))
}

// ClearSession signs the device out. Local data is kept; syncing stops.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.kv.Delete(ctx, sessionKey)
}
