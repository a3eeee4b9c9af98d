package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/wakatime/internal/keystore"
	"github.com/alexanderramin/wakatime/internal/log"
)

type keyService struct {
	keys     keystore.Store
	observer UseCaseObserver
}

func NewKeyService(keys keystore.Store, observers ...UseCaseObserver) KeyService {
	return &keyService{
		keys:     keys,
		observer: useCaseObserverOrNoop(observers),
	}
}

// SaveAPIKey stores key, replacing any previous one. The key itself is never
// logged.
func (s *keyService) SaveAPIKey(ctx context.Context, key string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-api-key",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{log.FieldPath: s.keys.Path()},
		})
	}()

	key = strings.TrimSpace(key)
	if key == "" {
		return keystore.ErrEmptyKey
	}
	return s.keys.Write(key)
}

func (s *keyService) KeyPath() string {
	return s.keys.Path()
}
