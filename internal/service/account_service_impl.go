package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/alexanderramin/wakatime/internal/keystore"
	"github.com/alexanderramin/wakatime/internal/wakatime"
)

type accountService struct {
	client   wakatime.Client
	keys     keystore.Store
	observer UseCaseObserver
}

func NewAccountService(
	client wakatime.Client,
	keys keystore.Store,
	observers ...UseCaseObserver,
) AccountService {
	return &accountService{
		client:   client,
		keys:     keys,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *accountService) Account(ctx context.Context) (account *domain.Account, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "account",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	var apiKey string
	apiKey, err = s.keys.Read()
	if err != nil {
		return nil, fmt.Errorf("reading api key: %w", err)
	}

	account, err = s.client.CurrentUser(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetching account: %w", err)
	}
	return account, nil
}
