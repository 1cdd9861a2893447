package calendly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is a minimal Calendly v2 API client authenticated with a personal
// access token. It makes exactly one request per call and never retries.
type Client struct {
	hc      *http.Client
	baseURL string
	token   string
}

// New returns a client for baseURL. A zero timeout leaves outbound calls
// bounded only by the caller's context.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
	}
}

// StatusError is returned when Calendly answers with a status other than
// the one the call expects. Body is the raw response, untouched.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("calendly: unexpected status %d", e.StatusCode)
}

// TransportError wraps a failure to reach Calendly or read its answer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// AvailableTimes lists open start times for eventType between start and end.
// Both bounds are sent as given; Calendly rejects spans over 7 days.
func (c *Client) AvailableTimes(ctx context.Context, eventType, start, end string) ([]AvailableTime, error) {
	q := url.Values{}
	q.Set("event_type", eventType)
	q.Set("start_time", start)
	q.Set("end_time", end)

	body, err := c.do(ctx, http.MethodGet, "/event_type_available_times", q, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var res availableTimesResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode available times: %w", err)
	}
	return res.Collection, nil
}

// CreateScheduledEvent books req and returns the created event.
func (c *Client) CreateScheduledEvent(ctx context.Context, req ScheduledEventRequest) (*ScheduledEvent, error) {
	jb, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode scheduled event: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, "/scheduled_events", nil, jb, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	var ev ScheduledEvent
	if err := decodeResource(body, "scheduled event", &ev, "uri"); err != nil {
		return nil, err
	}
	return &ev, nil
}

// CurrentUser returns the user that owns the token.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var u User
	if err := decodeResource(body, "current user", &u, "name", "email"); err != nil {
		return nil, err
	}
	return &u, nil
}

// decodeResource unpacks {"resource": {...}} into v. Each of fields must be
// present in the resource object; a 2xx answer without them is unusable.
func decodeResource(body []byte, what string, v any, fields ...string) error {
	var env resourceEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(env.Resource, &obj); err != nil || obj == nil {
		return fmt.Errorf("decode %s: missing resource", what)
	}
	for _, f := range fields {
		if _, ok := obj[f]; !ok {
			return fmt.Errorf("decode %s: missing resource.%s", what, f)
		}
	}
	if err := json.Unmarshal(env.Resource, v); err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, want int) ([]byte, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		_ = res.Body.Close()
	}()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if res.StatusCode != want {
		return nil, &StatusError{StatusCode: res.StatusCode, Body: string(b)}
	}
	return b, nil
}
