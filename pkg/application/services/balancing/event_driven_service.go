package balancing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vsinha/linebalance/pkg/application/services/analysis"
	"github.com/vsinha/linebalance/pkg/domain/entities"
	"github.com/vsinha/linebalance/pkg/domain/repositories"
	"github.com/vsinha/linebalance/pkg/infrastructure/events"
)

// EventDrivenService wraps Service and records each run's milestones in an
// event store: run started, one event per balanced section, the located
// bottleneck, and run completion. Publishing failures never fail the run.
type EventDrivenService struct {
	service    *Service
	eventStore events.Store
}

// NewEventDrivenService creates an event-publishing balancing service
func NewEventDrivenService(eventStore events.Store) *EventDrivenService {
	return &EventDrivenService{
		service:    NewService(),
		eventStore: eventStore,
	}
}

// NewEventDrivenServiceWithAnalyzer creates an event-publishing balancing
// service with a tuned line analyzer
func NewEventDrivenServiceWithAnalyzer(
	analyzer *analysis.LineAnalyzer,
	eventStore events.Store,
) *EventDrivenService {
	return &EventDrivenService{
		service:    NewServiceWithAnalyzer(analyzer),
		eventStore: eventStore,
	}
}

// Balance runs the balancing pipeline and records the run's event trail
func (s *EventDrivenService) Balance(
	ctx context.Context,
	repo repositories.ProcessRepository,
	req Request,
) (*entities.LineResult, error) {
	if req.RunID == "" {
		req.RunID = uuid.NewString()
	}

	s.publish(req.RunID, events.NewRunStartedEvent(req.RunID, req.Basis, repo.SectionNames()))

	result, err := s.service.Balance(ctx, repo, req)
	if err != nil {
		return nil, err
	}

	for _, section := range result.Sections {
		s.publish(result.RunID, events.NewSectionBalancedEvent(result.RunID, section))
	}
	if result.Bottleneck > 0 {
		s.publish(result.RunID, events.NewBottleneckFoundEvent(result.RunID, *result))
	}
	s.publish(result.RunID, events.NewRunCompletedEvent(result.RunID, *result))

	return result, nil
}

// Takt delegates to the underlying service; takt analysis records no events
func (s *EventDrivenService) Takt(
	ctx context.Context,
	repo repositories.ProcessRepository,
	totalOperators int,
	basis entities.TimeBasis,
) (*entities.TaktAnalysis, error) {
	return s.service.Takt(ctx, repo, totalOperators, basis)
}

func (s *EventDrivenService) publish(runID string, event events.Event) {
	if err := s.eventStore.Append(runID, event); err != nil {
		fmt.Printf("Warning: failed to publish %s event: %v\n", event.Type(), err)
	}
}
