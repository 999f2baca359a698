package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidToken is returned when the identity service rejects a token.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates a bearer token and resolves the opaque user id it
// belongs to. Token issuance and signature checks live entirely in the
// identity service.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// IdentityClient verifies tokens against the identity service's user
// endpoint.
type IdentityClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewIdentityClient creates a new IdentityClient
func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	return &IdentityClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify asks the identity service who the token belongs to. Any
// non-OK answer means the token is invalid; transport failures are
// surfaced as such so callers can distinguish them.
func (c *IdentityClient) Verify(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("identity service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrInvalidToken
	}

	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode identity response: %w", err)
	}
	if payload.ID == "" {
		return "", ErrInvalidToken
	}

	return payload.ID, nil
}
