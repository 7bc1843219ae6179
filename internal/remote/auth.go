package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Session is the identity returned by a successful sign-in.
type Session struct {
	UserID      string
	Email       string
	AccessToken string
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type authError struct {
	Message     string `json:"msg"`
	Description string `json:"error_description"`
}

// SignIn exchanges email/password credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, c.baseURL+"/auth/v1/token?grant_type=password", email, password)
}

// SignUp registers a new user. Depending on the remote's email
// confirmation settings the returned session may not yet carry a token.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, c.baseURL+"/auth/v1/signup", email, password)
}

func (c *Client) authenticate(ctx context.Context, endpoint, email, password string) (*Session, error) {
	payload, err := json.Marshal(authRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach auth endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ae authError
		_ = json.Unmarshal(body, &ae)
		msg := ae.Description
		if msg == "" {
			msg = ae.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("authentication failed: %s", msg)
	}

	var ar authResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	return &Session{
		UserID:      ar.User.ID,
		Email:       ar.User.Email,
		AccessToken: ar.AccessToken,
	}, nil
}
