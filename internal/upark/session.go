package upark

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrFetchFailed marks any collection load that did not produce a usable
// response, transport and server errors alike. An empty response body is a
// valid empty collection and is never wrapped in this.
var ErrFetchFailed = errors.New("fetch failed")

// APIError carries the server's verbatim reply for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Session is the authenticated HTTP session against the uPark API. It owns
// no retry or caching; one call is one round trip.
type Session struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewSession(baseURL, token string, timeout time.Duration) *Session {
	return &Session{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetList fetches a collection at the given relative path and decodes it
// into v. An empty or absent body leaves v untouched, which callers treat
// as a zero-length collection.
func (s *Session) GetList(ctx context.Context, path string, params url.Values, v any) error {
	const op = "upark.Session.GetList"

	reqURL := s.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		return fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, apiErr)
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if err := json.Unmarshal([]byte(trimmed), v); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, err)
	}

	return nil
}

// Delete issues DELETE on the given relative path and returns the server's
// response text verbatim. A non-2xx reply comes back as an *APIError so the
// caller can surface the server's message unchanged.
func (s *Session) Delete(ctx context.Context, path string) (string, error) {
	const op = "upark.Session.Delete"

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/"+strings.TrimLeft(path, "/"), nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	msg := strings.TrimSpace(string(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s: %w", op, &APIError{StatusCode: resp.StatusCode, Message: msg})
	}

	return msg, nil
}

func (s *Session) authorize(req *http.Request) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}
