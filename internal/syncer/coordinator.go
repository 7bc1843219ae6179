// Package syncer reconciles the local document store with the remote
// document store. Saves push opportunistically in the background;
// explicit syncs pull, merge, and push under the policy in merge.go.
package syncer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/money-mastery/internal/common"
	"github.com/Veraticus/money-mastery/internal/model"
	"github.com/Veraticus/money-mastery/internal/remote"
	"github.com/Veraticus/money-mastery/internal/storage"
)

// RemoteStore is the contract the remote document store must satisfy.
type RemoteStore interface {
	FetchDocument(ctx context.Context, accessToken, userID string) (*remote.Document, error)
	UpsertDocument(ctx context.Context, accessToken string, doc remote.Document) error
}

// Coordinator owns reconciliation between the local store and the remote.
// Background pushes go through a single-slot queue: a newer pending write
// replaces an undelivered older one, so superseded writes never race.
type Coordinator struct {
	store  *storage.Store
	remote RemoteStore // nil when no remote is configured
	now    func() time.Time

	mu      sync.Mutex
	pending *model.FinancialData
	wake    chan struct{}
}

// New creates a coordinator and registers it as the store's save hook.
// A nil remote leaves every sync operation a no-op.
func New(store *storage.Store, rs RemoteStore) *Coordinator {
	c := &Coordinator{
		store:  store,
		remote: rs,
		now:    time.Now,
		wake:   make(chan struct{}, 1),
	}
	store.OnSave(c.Enqueue)
	return c
}

// WithClock overrides the coordinator's time source.
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

// Enqueue records doc as the latest pending background push. It never
// blocks; an undelivered older document is simply replaced.
func (c *Coordinator) Enqueue(doc model.FinancialData) {
	c.mu.Lock()
	c.pending = &doc
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Start runs the background pusher until ctx is canceled.
func (c *Coordinator) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.wake:
				c.Flush(ctx)
			}
		}
	}()
}

// Flush synchronously pushes the latest pending document, if any.
// Push failures are logged, not retried, and never surfaced.
func (c *Coordinator) Flush(ctx context.Context) {
	c.mu.Lock()
	doc := c.pending
	c.pending = nil
	c.mu.Unlock()

	if doc == nil {
		return
	}
	c.push(ctx, *doc)
}

func (c *Coordinator) push(ctx context.Context, doc model.FinancialData) {
	if c.remote == nil {
		return
	}
	sess := c.store.Session(ctx)
	if sess == nil {
		return
	}

	err := c.remote.UpsertDocument(ctx, sess.AccessToken, remote.Document{
		UserID:    sess.UserID,
		Data:      doc,
		UpdatedAt: c.now().UTC(),
	})
	if err != nil {
		common.LogError(err, "background sync push failed", common.Fields{"user": sess.UserID})
		return
	}
	slog.Debug("document pushed to remote", "user", sess.UserID)
}

// Sync performs an explicit two-way reconciliation: fetch remote, merge
// with local per the timestamp policy, persist the merged document
// locally, record the sync time, and push the result back.
func (c *Coordinator) Sync(ctx context.Context) error {
	if c.remote == nil {
		return common.NewUserError(
			"Cloud sync is not configured. Set remote.url and remote.anon_key in your config.",
			common.ErrNotConfigured)
	}
	sess := c.store.Session(ctx)
	if sess == nil {
		return common.NewUserError("Sign in before syncing.", common.ErrNotAuthenticated)
	}

	local := c.store.Document(ctx)

	remoteDoc, err := c.remote.FetchDocument(ctx, sess.AccessToken, sess.UserID)
	switch {
	case err == nil:
		// fall through to merge
	case errors.Is(err, common.ErrNotFound):
		// First sync for this user: nothing remote to merge.
		return c.finish(ctx, sess, local)
	case errors.Is(err, common.ErrMissingTable):
		return common.NewUserError(
			"The financial_data table does not exist in your remote project. Run the setup SQL to create it.", err)
	case errors.Is(err, common.ErrPermissionDenied):
		return common.NewUserError(
			"Permission denied reading your remote data. Check the table's row-level security policies.", err)
	default:
		return common.NewUserError("Sync failed", err)
	}

	merged := MergeDocuments(local, remoteDoc.Data, c.store.LastSynced(ctx), remoteDoc.UpdatedAt)
	return c.finish(ctx, sess, merged)
}

// finish persists doc locally, stamps the sync time, and pushes upstream.
func (c *Coordinator) finish(ctx context.Context, sess *storage.Session, doc model.FinancialData) error {
	c.store.SaveDocument(ctx, doc)
	c.store.SetLastSynced(ctx, c.now())

	err := c.remote.UpsertDocument(ctx, sess.AccessToken, remote.Document{
		UserID:    sess.UserID,
		Data:      doc,
		UpdatedAt: c.now().UTC(),
	})
	if err != nil {
		return common.NewUserError("Sync failed", err)
	}

	// The save above queued a background push of the same content.
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
	return nil
}
