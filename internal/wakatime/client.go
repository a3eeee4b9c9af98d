package wakatime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/google/uuid"
)

const (
	summariesEndpoint = "users/current/summaries"
	currentEndpoint   = "users/current"

	userAgent       = "wakatime-go-cli"
	maxErrorBodyLen = 200
)

// Client provides access to the WakaTime summaries and account endpoints.
type Client interface {
	// Summaries returns one DaySummary per calendar day in r.
	Summaries(ctx context.Context, r domain.DateRange, apiKey string) ([]domain.DaySummary, error)

	// CurrentUser returns the account the key belongs to.
	CurrentUser(ctx context.Context, apiKey string) (*domain.Account, error)
}

// ClientConfig holds the transport settings for a Client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// httpClient implements Client over the WakaTime REST API.
type httpClient struct {
	cfg      ClientConfig
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the API rooted at cfg.BaseURL.
func NewClient(cfg ClientConfig, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Summaries(ctx context.Context, r domain.DateRange, apiKey string) ([]domain.DaySummary, error) {
	q := url.Values{}
	q.Set("start", r.Start)
	q.Set("end", r.End)

	var days dayList
	if err := c.get(ctx, summariesEndpoint, q, apiKey, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *httpClient) CurrentUser(ctx context.Context, apiKey string) (*domain.Account, error) {
	var acct domain.Account
	if err := c.get(ctx, currentEndpoint, url.Values{}, apiKey, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// get performs one authenticated GET and decodes the data field of a 200
// response into out. There are no retries.
func (c *httpClient) get(ctx context.Context, endpoint string, q url.Values, apiKey string, out any) error {
	start := time.Now()
	event := CallEvent{CallID: uuid.NewString(), Endpoint: "/" + endpoint}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	body, status, err := c.doRequest(ctx, endpoint, q, apiKey)
	if err == nil {
		err = decodeData(body, out)
	}
	event.StatusCode = status
	event.LatencyMs = time.Since(start).Milliseconds()
	event.Success = err == nil
	event.ErrorCode = errorCode(err)
	c.observer.OnCallComplete(event)

	return err
}

func (c *httpClient) doRequest(ctx context.Context, endpoint string, q url.Values, apiKey string) ([]byte, int, error) {
	q.Set("api_key", apiKey)
	rawURL := c.cfg.BaseURL + "/" + endpoint + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, 0, ErrTimeout
		}
		return nil, 0, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, redactURL(rawURL), unwrapURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, resp.StatusCode, ErrTimeout
		}
		return nil, resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, resp.StatusCode, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, resp.StatusCode, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		return nil, resp.StatusCode, fmt.Errorf("%w: status %d %s: %s",
			ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode), truncate(string(body)))
	}
}

// redactURL hides the api_key query parameter so URLs can be logged.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// unwrapURLError drops the *url.Error wrapper, whose message embeds the full
// request URL including the key.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen] + "..."
	}
	return s
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrUnexpectedStatus):
		return "STATUS"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
