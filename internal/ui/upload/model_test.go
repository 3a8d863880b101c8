package uploadui

import (
	"strings"
	"testing"

	"quizdeck/internal/upload"
)

func apply(t *testing.T, m Model, event upload.Event, ok bool) Model {
	t.Helper()
	next, _ := m.Update(eventMsg{event: event, ok: ok})
	model, isModel := next.(Model)
	if !isModel {
		t.Fatalf("unexpected model type %T", next)
	}
	return model
}

func TestProgressEventsUpdateView(t *testing.T) {
	m := NewModel(nil, Options{NoColor: true})
	m = apply(t, m, upload.Event{Kind: upload.EventProgress, Percent: 40, Message: "Generating questions..."}, true)
	view := m.View()
	if !strings.Contains(view, "40%") || !strings.Contains(view, "Generating questions...") {
		t.Fatalf("unexpected view %q", view)
	}
}

func TestDoneEventIsTerminal(t *testing.T) {
	m := NewModel(nil, Options{NoColor: true})
	m = apply(t, m, upload.Event{Kind: upload.EventDone, Message: "Created set with 10 questions"}, true)
	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
	if !strings.Contains(m.View(), "Created set with 10 questions") {
		t.Fatalf("expected the success message, got %q", m.View())
	}
}

func TestFailedEventSurfacesError(t *testing.T) {
	m := NewModel(nil, Options{NoColor: true})
	m = apply(t, m, upload.Event{Kind: upload.EventFailed, Message: upload.ErrTimeout.Error(), Err: upload.ErrTimeout}, true)
	if m.Err() == nil {
		t.Fatalf("expected a terminal error")
	}
	if !strings.Contains(m.View(), "upload timed out") {
		t.Fatalf("expected the timeout message, got %q", m.View())
	}
}
