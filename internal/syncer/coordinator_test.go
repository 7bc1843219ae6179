package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/money-mastery/internal/common"
	"github.com/Veraticus/money-mastery/internal/model"
	"github.com/Veraticus/money-mastery/internal/remote"
	"github.com/Veraticus/money-mastery/internal/storage"
)

// fakeRemote is an in-memory RemoteStore. The mutex matters when the
// coordinator's background pusher is running.
type fakeRemote struct {
	mu       sync.Mutex
	docs     map[string]remote.Document
	fetchErr error
	pushErr  error
	pushes   int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{docs: make(map[string]remote.Document)}
}

func (f *fakeRemote) FetchDocument(_ context.Context, _ string, userID string) (*remote.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	doc, ok := f.docs[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no rows", common.ErrNotFound)
	}
	return &doc, nil
}

func (f *fakeRemote) UpsertDocument(_ context.Context, _ string, doc remote.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes++
	f.docs[doc.UserID] = doc
	return nil
}

func (f *fakeRemote) pushedCurrency(userID string) (model.Currency, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[userID]
	if !ok {
		return "", false
	}
	return doc.Data.Currency, true
}

func newTestCoordinator(t *testing.T, rs RemoteStore) (*Coordinator, *storage.Store) {
	t.Helper()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := storage.NewStore(storage.NewMemoryKV()).WithClock(clock)
	c := New(store, rs).WithClock(clock)
	return c, store
}

func signIn(t *testing.T, store *storage.Store) {
	t.Helper()
	require.NoError(t, store.SetSession(context.Background(), storage.Session{
		UserID: "user-1", Email: "a@example.com", AccessToken: "tok",
	}))
}

func TestSyncWithoutRemoteConfigured(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)

	err := c.Sync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotConfigured)

	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestSyncWithoutSession(t *testing.T) {
	c, _ := newTestCoordinator(t, newFakeRemote())

	err := c.Sync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestFirstSyncPushesLocalDocument(t *testing.T) {
	ctx := context.Background()
	rs := newFakeRemote()
	c, store := newTestCoordinator(t, rs)
	signIn(t, store)

	require.NoError(t, c.Sync(ctx))

	pushed, ok := rs.docs["user-1"]
	require.True(t, ok, "the local document lands remotely on first sync")
	assert.NotEmpty(t, pushed.Data.Transactions)
	assert.False(t, store.LastSynced(ctx).IsZero())
}

func TestSyncMergesRemoteRecords(t *testing.T) {
	ctx := context.Background()
	rs := newFakeRemote()
	c, store := newTestCoordinator(t, rs)
	signIn(t, store)

	local := store.Document(ctx)
	// Remote carries one transaction the local side has never seen, stamped
	// before the local side's last sync so local keeps priority.
	remoteDoc := local
	remoteDoc.Transactions = append([]model.Transaction{
		{ID: "remote-only", Date: "2025-06-10T00:00:00Z", Description: "From another device", Amount: 10, Type: model.TypeExpense},
	}, local.Transactions...)
	rs.docs["user-1"] = remote.Document{
		UserID:    "user-1",
		Data:      remoteDoc,
		UpdatedAt: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	store.SetLastSynced(ctx, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC))

	require.NoError(t, c.Sync(ctx))

	merged := store.Document(ctx)
	var found bool
	for _, tx := range merged.Transactions {
		if tx.ID == "remote-only" {
			found = true
		}
	}
	assert.True(t, found, "remote-only records survive the merge")
	assert.Equal(t, len(local.Transactions)+1, len(merged.Transactions))
}

func TestSyncErrorsMapToUserMessages(t *testing.T) {
	tests := []struct {
		name     string
		fetchErr error
		sentinel error
	}{
		{
			name:     "missing table",
			fetchErr: fmt.Errorf("%w: relation does not exist", common.ErrMissingTable),
			sentinel: common.ErrMissingTable,
		},
		{
			name:     "permission denied",
			fetchErr: fmt.Errorf("%w: row-level security", common.ErrPermissionDenied),
			sentinel: common.ErrPermissionDenied,
		},
		{
			name:     "anything else",
			fetchErr: errors.New("connection reset"),
			sentinel: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newFakeRemote()
			rs.fetchErr = tt.fetchErr
			c, store := newTestCoordinator(t, rs)
			signIn(t, store)

			err := c.Sync(context.Background())
			require.Error(t, err)

			var userErr *common.UserError
			require.ErrorAs(t, err, &userErr)
			assert.NotEmpty(t, userErr.UserMessage)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestSyncPushFailureSurfaces(t *testing.T) {
	rs := newFakeRemote()
	rs.pushErr = errors.New("boom")
	c, store := newTestCoordinator(t, rs)
	signIn(t, store)

	err := c.Sync(context.Background())
	require.Error(t, err)

	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestEnqueueKeepsOnlyLatest(t *testing.T) {
	ctx := context.Background()
	rs := newFakeRemote()
	c, store := newTestCoordinator(t, rs)
	signIn(t, store)

	first := model.FinancialData{Currency: model.USD}
	second := model.FinancialData{Currency: model.EUR}
	c.Enqueue(first)
	c.Enqueue(second)

	c.Flush(ctx)
	assert.Equal(t, 1, rs.pushes, "superseded writes are dropped, not replayed")
	assert.Equal(t, model.EUR, rs.docs["user-1"].Data.Currency)

	// Nothing pending: flushing again is a no-op.
	c.Flush(ctx)
	assert.Equal(t, 1, rs.pushes)
}

func TestBackgroundPushSkipsWhenSignedOut(t *testing.T) {
	ctx := context.Background()
	rs := newFakeRemote()
	c, _ := newTestCoordinator(t, rs)

	c.Enqueue(model.FinancialData{Currency: model.USD})
	c.Flush(ctx)
	assert.Zero(t, rs.pushes)
}

func TestStartPushesSavesWithoutFlush(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rs := newFakeRemote()
	c, store := newTestCoordinator(t, rs)
	signIn(t, store)
	c.Start(ctx)

	doc := store.Document(ctx)
	doc.Currency = model.CHF
	store.SaveDocument(ctx, doc)

	require.Eventually(t, func() bool {
		cur, ok := rs.pushedCurrency("user-1")
		return ok && cur == model.CHF
	}, time.Second, 5*time.Millisecond, "the background pusher delivers the save on its own")
}

func TestSaveTriggersBackgroundQueue(t *testing.T) {
	ctx := context.Background()
	rs := newFakeRemote()
	c, store := newTestCoordinator(t, rs)
	signIn(t, store)

	doc := store.Document(ctx)
	c.Flush(ctx) // drain the seed save
	pushesAfterSeed := rs.pushes

	doc.Currency = model.GBP
	store.SaveDocument(ctx, doc)
	c.Flush(ctx)

	assert.Equal(t, pushesAfterSeed+1, rs.pushes)
	assert.Equal(t, model.GBP, rs.docs["user-1"].Data.Currency)
}
