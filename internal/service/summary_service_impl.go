package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/wakatime/internal/contract"
	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/alexanderramin/wakatime/internal/keystore"
	"github.com/alexanderramin/wakatime/internal/log"
	"github.com/alexanderramin/wakatime/internal/report"
	"github.com/alexanderramin/wakatime/internal/wakatime"
)

type summaryService struct {
	client   wakatime.Client
	keys     keystore.Store
	observer UseCaseObserver
}

func NewSummaryService(
	client wakatime.Client,
	keys keystore.Store,
	observers ...UseCaseObserver,
) SummaryService {
	return &summaryService{
		client:   client,
		keys:     keys,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *summaryService) Summary(ctx context.Context, req contract.SummaryRequest) (resp *contract.SummaryResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		log.FieldRange: string(req.Range),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "summary",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	var r domain.DateRange
	if r, err = report.RangeFor(req.Range, now); err != nil {
		return nil, &contract.RequestError{
			Code:    contract.ReqErrInvalidRange,
			Message: fmt.Sprintf("unknown range %q", req.Range),
			Err:     err,
		}
	}
	fields[log.FieldRange] = string(r.Name)
	fields[log.FieldStart] = r.Start
	fields[log.FieldEnd] = r.End

	// Compile before touching the key or the network.
	var filter *report.ProjectFilter
	filter, err = report.NewProjectFilter(req.ProjectFilter)
	if err != nil {
		return nil, &contract.RequestError{
			Code:    contract.ReqErrInvalidFilter,
			Message: err.Error(),
			Err:     err,
		}
	}
	if !filter.MatchesAll() {
		fields[log.FieldFilter] = filter.String()
	}

	var apiKey string
	apiKey, err = s.keys.Read()
	if err != nil {
		return nil, fmt.Errorf("reading api key: %w", err)
	}

	var days []domain.DaySummary
	days, err = s.client.Summaries(ctx, r, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetching %s summaries: %w", r.Name, err)
	}
	fields[log.FieldDays] = len(days)

	resp = &contract.SummaryResponse{
		Range:  r,
		Result: report.Aggregate(days, filter),
		Days:   len(days),
	}
	if len(days) == 1 {
		resp.GrandTotalText = days[0].GrandTotal.Text
	}
	if !filter.MatchesAll() {
		resp.ProjectFilter = filter.String()
		resp.Warnings = append(resp.Warnings,
			fmt.Sprintf("Filter /%s/ applies to projects only; language totals include all projects.", filter))
	}
	return resp, nil
}
