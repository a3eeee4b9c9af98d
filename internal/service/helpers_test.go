package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/wakatime/internal/wakatime"
)

var fixedNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func newTestClient(t *testing.T, baseURL string) wakatime.Client {
	t.Helper()
	return wakatime.NewClient(wakatime.ClientConfig{BaseURL: baseURL, Timeout: 2 * time.Second}, nil)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
