package service

import (
	"context"

	"github.com/alexanderramin/wakatime/internal/contract"
	"github.com/alexanderramin/wakatime/internal/domain"
)

// SummaryService aggregates coding activity over a named date range.
type SummaryService interface {
	Summary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
}

// AccountService reports who the stored API key belongs to.
type AccountService interface {
	Account(ctx context.Context) (*domain.Account, error)
}

// KeyService manages the stored API key.
type KeyService interface {
	SaveAPIKey(ctx context.Context, key string) error
	KeyPath() string
}
