package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/alexanderramin/wakatime/internal/domain"
)

// FakeAPIKey is the key a FakeAPI accepts unless overridden.
const FakeAPIKey = "waka_test_key"

// FakeAPI is an httptest server speaking the subset of the WakaTime API the
// client uses.
type FakeAPI struct {
	*httptest.Server

	mu        sync.Mutex
	key       string
	days      []domain.DaySummary
	account   domain.Account
	status    int
	body      string
	singleDay bool
	requests  []url.URL
}

// FakeAPIOption configures a FakeAPI.
type FakeAPIOption func(*FakeAPI)

// WithDays sets the summaries returned by the summaries endpoint.
func WithDays(days ...domain.DaySummary) FakeAPIOption {
	return func(f *FakeAPI) { f.days = days }
}

// WithSingleDayObject makes the summaries endpoint return its first day as a
// bare object instead of an array.
func WithSingleDayObject() FakeAPIOption {
	return func(f *FakeAPI) { f.singleDay = true }
}

// WithAccount sets the account returned by /users/current.
func WithAccount(a domain.Account) FakeAPIOption {
	return func(f *FakeAPI) { f.account = a }
}

// WithStatus forces every response to the given status and raw body.
func WithStatus(code int, body string) FakeAPIOption {
	return func(f *FakeAPI) {
		f.status = code
		f.body = body
	}
}

// WithAPIKey changes the accepted key.
func WithAPIKey(key string) FakeAPIOption {
	return func(f *FakeAPI) { f.key = key }
}

// NewFakeAPI starts a fake API server that is closed when the test completes.
func NewFakeAPI(t *testing.T, opts ...FakeAPIOption) *FakeAPI {
	t.Helper()
	f := &FakeAPI{key: FakeAPIKey, account: NewTestAccount()}
	for _, opt := range opts {
		opt(f)
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// Requests returns the URLs received so far.
func (f *FakeAPI) Requests() []url.URL {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]url.URL, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, *r.URL)
	f.mu.Unlock()

	if f.status != 0 {
		w.WriteHeader(f.status)
		w.Write([]byte(f.body))
		return
	}
	if r.URL.Query().Get("api_key") != f.key {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
		return
	}

	var payload any
	switch r.URL.Path {
	case "/users/current/summaries":
		q := r.URL.Query()
		var data any = f.days
		if f.singleDay && len(f.days) > 0 {
			data = f.days[0]
		}
		if f.days == nil {
			data = []domain.DaySummary{}
		}
		payload = map[string]any{"data": data, "start": q.Get("start"), "end": q.Get("end")}
	case "/users/current":
		payload = map[string]any{"data": f.account}
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
