// Package remote talks to the cloud document store: a PostgREST-style
// table keyed by user id holding one financial document per user, plus
// its password-based auth endpoints. The remote is a non-owning backup;
// all merge policy lives in the syncer package.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/money-mastery/internal/common"
	"github.com/Veraticus/money-mastery/internal/model"
)

const documentsTable = "financial_data"

// Client is an HTTP client for the remote document store.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// Document is one row of the remote store.
type Document struct {
	UserID    string              `json:"user_id"`
	Data      model.FinancialData `json:"data"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// NewClient creates a client for the remote store at baseURL.
func NewClient(baseURL, anonKey string) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" || anonKey == "" {
		return nil, common.ErrNotConfigured
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("%w: remote URL %q is not a valid URL", common.ErrInvalidConfig, baseURL)
	}

	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// FetchDocument returns the stored document for userID, or
// common.ErrNotFound when the user has never pushed one.
func (c *Client) FetchDocument(ctx context.Context, accessToken, userID string) (*Document, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?user_id=eq.%s&select=user_id,data,updated_at",
		c.baseURL, documentsTable, url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch request: %w", err)
	}
	c.setHeaders(req, accessToken)
	// Exactly one row or a PGRST116 error, instead of a one-element array.
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read fetch response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, mapTableError(resp.StatusCode, body)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode remote document: %w", err)
	}
	return &doc, nil
}

// UpsertDocument overwrites the user's remote document. A duplicate-key
// conflict falls back to an update by user id; the conflict is only
// surfaced if the fallback also fails.
func (c *Client) UpsertDocument(ctx context.Context, accessToken string, doc Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, documentsTable)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create upsert request: %w", err)
	}
	c.setHeaders(req, accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to push document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	pushErr := mapTableError(resp.StatusCode, body)
	if !isDuplicate(pushErr) {
		return pushErr
	}
	return c.updateDocument(ctx, accessToken, doc, payload)
}

func (c *Client) updateDocument(ctx context.Context, accessToken string, doc Document, payload []byte) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?user_id=eq.%s",
		c.baseURL, documentsTable, url.QueryEscape(doc.UserID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create update request: %w", err)
	}
	c.setHeaders(req, accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return mapTableError(resp.StatusCode, body)
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.anonKey)
	if accessToken == "" {
		accessToken = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
}

// tableError is the structured error body PostgREST returns.
type tableError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// mapTableError converts a PostgREST error response into a sentinel-wrapped
// error so callers can distinguish "missing table" from "permission denied"
// from "not found" while still surfacing the remote message verbatim.
func mapTableError(status int, body []byte) error {
	var te tableError
	_ = json.Unmarshal(body, &te)

	msg := te.Message
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch te.Code {
	case "PGRST116":
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	case "42P01":
		return fmt.Errorf("%w: %s", common.ErrMissingTable, msg)
	case "42501":
		return fmt.Errorf("%w: %s", common.ErrPermissionDenied, msg)
	case "23505":
		return fmt.Errorf("%w: %s", common.ErrDuplicateEntry, msg)
	}

	switch status {
	case http.StatusNotAcceptable, http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrPermissionDenied, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrDuplicateEntry, msg)
	}
	return fmt.Errorf("remote error (%d): %s", status, msg)
}

func isDuplicate(err error) bool {
	return errors.Is(err, common.ErrDuplicateEntry)
}
