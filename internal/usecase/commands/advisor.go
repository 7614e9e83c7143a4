package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"flashsale-scheduler/internal/domain/schedule"
	reqdto "flashsale-scheduler/internal/handler/dto/request"
	"flashsale-scheduler/internal/pkg/clock"
	"flashsale-scheduler/internal/pkg/errs"
	"flashsale-scheduler/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// SuggestionResult prefills the schedule form. Value is already in schedule terms:
// percent off for percentage, target price for fixed.
type SuggestionResult struct {
	ProductID string
	Type      schedule.Type
	Value     decimal.Decimal
	StartTime time.Time
	EndTime   time.Time
	Reasoning string
	Fallback  bool
}

type AdvisorCommands interface {
	SuggestSchedule(ctx context.Context, productID string, req reqdto.SuggestionRequest) (*SuggestionResult, error)
}

type advisorUseCaseImpl struct {
	reconciler Reconciler
	advisor    shared.Advisor
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAdvisorUseCase(reconciler Reconciler, advisor shared.Advisor, clock clock.Clock, logger *slog.Logger) AdvisorCommands {
	return &advisorUseCaseImpl{
		reconciler: reconciler,
		advisor:    advisor,
		clock:      clock,
		logger:     logger,
	}
}

func (a *advisorUseCaseImpl) SuggestSchedule(ctx context.Context, productID string, req reqdto.SuggestionRequest) (*SuggestionResult, error) {
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return nil, errs.ErrEmptyGoal
	}

	snap, err := a.reconciler.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := snap.Catalog.Find(productID)
	if !ok {
		return nil, errs.ErrProductNotFound
	}

	fallback := false
	suggestion, err := a.advisor.Suggest(ctx, p, goal)
	if err != nil {
		a.logger.Warn("advisor unavailable, using fallback", "product_id", productID, "error", err)
		suggestion = schedule.FallbackSuggestion()
		fallback = true
	}

	start := a.clock.Now()
	if req.StartTime != nil {
		start = *req.StartTime
	}

	return &SuggestionResult{
		ProductID: productID,
		Type:      suggestion.Type,
		Value:     suggestion.TargetValue(p.OriginalPrice()),
		StartTime: start,
		EndTime:   start.Add(suggestion.Duration),
		Reasoning: suggestion.Reasoning,
		Fallback:  fallback,
	}, nil
}
