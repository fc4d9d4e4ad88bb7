package formview

import (
	"context"
	"errors"
	"testing"

	"github.com/raghusami/personal-finance-tracker/internal/client/notify"
)

type note struct {
	ID     string
	Title  string
	Amount float64
}

type noteSchema struct{}

func (noteSchema) Defaults() note {
	return note{Amount: 1}
}

func (noteSchema) Validate(n note) map[string]string {
	errs := map[string]string{}
	if n.Title == "" {
		errs["title"] = "title is required"
	}
	if n.Amount <= 0 {
		errs["amount"] = "amount must be greater than zero"
	}
	return errs
}

type fakeStore struct {
	record    note
	getErr    error
	saveErr   error
	getCalls  int
	createGot []note
	updateGot []note
	updateIDs []string
}

func (s *fakeStore) Get(_ context.Context, id string) (note, error) {
	s.getCalls++
	if s.getErr != nil {
		return note{}, s.getErr
	}
	return s.record, nil
}

func (s *fakeStore) Create(_ context.Context, record note) (note, error) {
	s.createGot = append(s.createGot, record)
	if s.saveErr != nil {
		return note{}, s.saveErr
	}
	record.ID = "created-1"
	return record, nil
}

func (s *fakeStore) Update(_ context.Context, id string, record note) (note, error) {
	s.updateIDs = append(s.updateIDs, id)
	s.updateGot = append(s.updateGot, record)
	if s.saveErr != nil {
		return note{}, s.saveErr
	}
	return record, nil
}

type recordingSink struct {
	severities []notify.Severity
	messages   []string
}

func (s *recordingSink) Notify(severity notify.Severity, message string) {
	s.severities = append(s.severities, severity)
	s.messages = append(s.messages, message)
}

func TestController_CreateMode(t *testing.T) {
	store := &fakeStore{}
	sink := &recordingSink{}
	form := New[note]("Note", noteSchema{}, store, sink)

	t.Run("starts with schema defaults", func(t *testing.T) {
		if form.Mode() != ModeCreate {
			t.Errorf("expected create mode, got %s", form.Mode())
		}
		if got := form.Draft(); got.Amount != 1 {
			t.Errorf("expected default amount 1, got %v", got.Amount)
		}
	})

	t.Run("invalid draft blocks submit without a store call", func(t *testing.T) {
		form.SetDraft(note{Amount: -5})
		if _, ok := form.Submit(context.Background()); ok {
			t.Fatal("expected submit to be blocked")
		}
		if len(store.createGot) != 0 {
			t.Errorf("expected no create call, got %d", len(store.createGot))
		}
		errs := form.Errors()
		if errs["title"] == "" || errs["amount"] == "" {
			t.Errorf("expected field-scoped errors, got %v", errs)
		}
	})

	t.Run("valid draft creates and notifies success", func(t *testing.T) {
		form.SetDraft(note{Title: "rent", Amount: 800})
		saved, ok := form.Submit(context.Background())
		if !ok {
			t.Fatal("expected submit to succeed")
		}
		if saved.ID != "created-1" {
			t.Errorf("expected the server-assigned id, got %q", saved.ID)
		}
		if len(sink.severities) == 0 || sink.severities[len(sink.severities)-1] != notify.SeveritySuccess {
			t.Errorf("expected a success notification, got %v", sink.severities)
		}
	})
}

func TestController_SubmitFailureKeepsDraft(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("network down")}
	sink := &recordingSink{}
	form := New[note]("Note", noteSchema{}, store, sink)

	draft := note{Title: "rent", Amount: 800}
	form.SetDraft(draft)

	if _, ok := form.Submit(context.Background()); ok {
		t.Fatal("expected submit to fail")
	}
	if got := form.Draft(); got != draft {
		t.Errorf("expected draft to survive the failure, got %+v", got)
	}
	if len(sink.severities) != 1 || sink.severities[0] != notify.SeverityError {
		t.Errorf("expected one error notification, got %v", sink.severities)
	}

	// Retry after the outage succeeds with the same draft.
	store.saveErr = nil
	if _, ok := form.Submit(context.Background()); !ok {
		t.Error("expected the retry to succeed")
	}
}

func TestController_EditMode(t *testing.T) {
	store := &fakeStore{record: note{ID: "n-1", Title: "stored", Amount: 42}}
	sink := &recordingSink{}
	form := New[note]("Note", noteSchema{}, store, sink)

	t.Run("load replaces every draft field", func(t *testing.T) {
		if err := form.LoadForEdit(context.Background(), "n-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if form.Mode() != ModeEdit {
			t.Errorf("expected edit mode, got %s", form.Mode())
		}
		if got := form.Draft(); got != store.record {
			t.Errorf("expected draft %+v, got %+v", store.record, got)
		}
	})

	t.Run("submit updates by id", func(t *testing.T) {
		draft := form.Draft()
		draft.Amount = 50
		form.SetDraft(draft)

		if _, ok := form.Submit(context.Background()); !ok {
			t.Fatal("expected submit to succeed")
		}
		if len(store.updateIDs) != 1 || store.updateIDs[0] != "n-1" {
			t.Errorf("expected update for n-1, got %v", store.updateIDs)
		}
		if len(store.createGot) != 0 {
			t.Errorf("expected no create call in edit mode, got %d", len(store.createGot))
		}
	})

	t.Run("load failure notifies and stays in create mode", func(t *testing.T) {
		broken := &fakeStore{getErr: errors.New("not found")}
		brokenSink := &recordingSink{}
		f := New[note]("Note", noteSchema{}, broken, brokenSink)
		if err := f.LoadForEdit(context.Background(), "missing"); err == nil {
			t.Fatal("expected an error")
		}
		if f.Mode() != ModeCreate {
			t.Errorf("expected create mode after a failed load, got %s", f.Mode())
		}
		if len(brokenSink.severities) != 1 || brokenSink.severities[0] != notify.SeverityError {
			t.Errorf("expected one error notification, got %v", brokenSink.severities)
		}
	})
}

func TestController_Cancel(t *testing.T) {
	store := &fakeStore{record: note{ID: "n-1", Title: "stored", Amount: 42}}
	form := New[note]("Note", noteSchema{}, store, notify.Discard())

	if err := form.LoadForEdit(context.Background(), "n-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	form.Cancel()

	if form.Mode() != ModeCreate {
		t.Errorf("expected create mode after cancel, got %s", form.Mode())
	}
	if got := form.Draft(); got != (noteSchema{}).Defaults() {
		t.Errorf("expected defaults after cancel, got %+v", got)
	}
	if calls := store.getCalls; calls != 1 {
		t.Errorf("expected no extra store calls on cancel, got %d total", calls)
	}
	if len(store.createGot)+len(store.updateGot) != 0 {
		t.Error("expected no save calls on cancel")
	}
}
