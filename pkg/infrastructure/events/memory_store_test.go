package events

import (
	"testing"

	"github.com/vsinha/linebalance/pkg/domain/entities"
)

func TestInMemoryStore_AppendAssignsSequence(t *testing.T) {
	store := NewInMemoryStore()

	runID := "run-1"
	err := store.Append(runID, NewRunStartedEvent(runID, entities.BasisSMV, []entities.SectionName{"Front"}))
	if err != nil {
		t.Fatalf("Failed to append event: %v", err)
	}
	err = store.Append(runID, NewRunCompletedEvent(runID, entities.LineResult{Bottleneck: 45}))
	if err != nil {
		t.Fatalf("Failed to append event: %v", err)
	}

	recorded, err := store.RunEvents(runID)
	if err != nil {
		t.Fatalf("Failed to read run events: %v", err)
	}
	if len(recorded) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(recorded))
	}
	if recorded[0].Sequence() != 1 || recorded[1].Sequence() != 2 {
		t.Errorf("Expected sequences 1 and 2, got %d and %d", recorded[0].Sequence(), recorded[1].Sequence())
	}
	if recorded[0].Type() != RunStartedEvent {
		t.Errorf("Expected %s first, got %s", RunStartedEvent, recorded[0].Type())
	}
	if recorded[1].RunID() != runID {
		t.Errorf("Expected run ID %s, got %s", runID, recorded[1].RunID())
	}
}

func TestInMemoryStore_RunsAreIsolated(t *testing.T) {
	store := NewInMemoryStore()

	_ = store.Append("run-1", NewEvent(RunStartedEvent, "run-1", nil))
	_ = store.Append("run-2", NewEvent(RunStartedEvent, "run-2", nil))
	_ = store.Append("run-2", NewEvent(RunCompletedEvent, "run-2", nil))

	one, _ := store.RunEvents("run-1")
	two, _ := store.RunEvents("run-2")
	all, _ := store.AllEvents()

	if len(one) != 1 {
		t.Errorf("Expected 1 event for run-1, got %d", len(one))
	}
	if len(two) != 2 {
		t.Errorf("Expected 2 events for run-2, got %d", len(two))
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 events total, got %d", len(all))
	}
	// Per-run sequences restart at 1.
	if two[0].Sequence() != 1 {
		t.Errorf("Expected run-2 to start at sequence 1, got %d", two[0].Sequence())
	}
}

func TestInMemoryStore_SubscribeReceivesMatchingEvents(t *testing.T) {
	store := NewInMemoryStore()

	var seen []string
	store.Subscribe([]string{SectionBalancedEvent}, func(e Event) {
		seen = append(seen, e.Type())
	})

	_ = store.Append("run-1", NewEvent(RunStartedEvent, "run-1", nil))
	_ = store.Append("run-1", NewSectionBalancedEvent("run-1", entities.SectionResult{Name: "Front"}))
	_ = store.Append("run-1", NewSectionBalancedEvent("run-1", entities.SectionResult{Name: "Back"}))

	if len(seen) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(seen))
	}
	for _, eventType := range seen {
		if eventType != SectionBalancedEvent {
			t.Errorf("Unexpected event type %s", eventType)
		}
	}
}

func TestNewBottleneckFoundEvent(t *testing.T) {
	line := entities.LineResult{
		Bottleneck: 80,
		Sections: []entities.SectionResult{
			{Name: "Front", Bottleneck: 45},
			{Name: "Assembly", Bottleneck: 80},
			{Name: "Back", Bottleneck: 80},
		},
	}

	event := NewBottleneckFoundEvent("run-1", line)

	data, ok := event.Data().(BottleneckFound)
	if !ok {
		t.Fatalf("Unexpected payload type %T", event.Data())
	}
	if data.Seconds != 80 {
		t.Errorf("Expected 80 seconds, got %g", data.Seconds)
	}
	if len(data.Sections) != 2 || data.Sections[0] != "Assembly" || data.Sections[1] != "Back" {
		t.Errorf("Expected tied sections [Assembly Back], got %v", data.Sections)
	}
}
