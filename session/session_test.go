package session

import (
	"context"
	"testing"
	"time"

	"github.com/you/pathfinder/finder"
	"github.com/you/pathfinder/models"
)

type noopClient struct{}

func (noopClient) FindPath(ctx context.Context, source, destination string) (*models.PathResult, error) {
	return &models.PathResult{Path: []string{source, destination}, Distance: 1}, nil
}

func newTestStore(ttl time.Duration) *Store {
	return NewStore(ttl, func() *finder.Orchestrator { return finder.New(noopClient{}) })
}

var cities = []string{"Gudivada", "Gudlavalleru", "Nuzvid", "Pedana"}

func TestGetOrCreate(t *testing.T) {
	store := newTestStore(time.Minute)

	sess, created := store.GetOrCreate("")
	if !created || sess.ID == "" {
		t.Fatalf("expected a new session, got created=%v id=%q", created, sess.ID)
	}

	again, created := store.GetOrCreate(sess.ID)
	if created || again != sess {
		t.Error("expected the existing session to be returned")
	}

	other, created := store.GetOrCreate("unknown-id")
	if !created || other.ID == "unknown-id" {
		t.Error("expected unknown ids to get a fresh server-issued session")
	}

	if store.Count() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Count())
	}

	store.Delete(sess.ID)
	if _, ok := store.Get(sess.ID); ok {
		t.Error("expected deleted session to be gone")
	}
}

func TestSessionExpires(t *testing.T) {
	store := newTestStore(20 * time.Millisecond)
	sess, _ := store.GetOrCreate("")

	time.Sleep(50 * time.Millisecond)

	if _, ok := store.Get(sess.ID); ok {
		t.Error("expected session to expire")
	}
}

func TestSelectCityUpdatesFinder(t *testing.T) {
	store := newTestStore(time.Minute)
	sess, _ := store.GetOrCreate("")

	sess.ToggleSelector(FieldSource)
	sess.SearchSelector(FieldSource, "gud")
	src, _ := sess.SelectorViews(cities, sess.Finder.Snapshot())
	if !src.Open || len(src.Options) != 2 {
		t.Fatalf("unexpected source view: %+v", src)
	}

	sess.SelectCity(FieldSource, "Gudivada")
	sess.SelectCity(FieldDestination, "Pedana")

	snap := sess.Finder.Snapshot()
	if snap.Source != "Gudivada" || snap.Destination != "Pedana" {
		t.Errorf("unexpected selection: %+v", snap)
	}

	src, dst := sess.SelectorViews(cities, snap)
	if src.Open || dst.Open {
		t.Error("expected both selectors closed after selection")
	}
	if src.Label != "Gudivada" || dst.Label != "Pedana" {
		t.Errorf("unexpected labels: %q, %q", src.Label, dst.Label)
	}
}

func TestOpeningOneSelectorClosesTheOther(t *testing.T) {
	store := newTestStore(time.Minute)
	sess, _ := store.GetOrCreate("")

	sess.ToggleSelector(FieldSource)
	sess.ToggleSelector(FieldDestination)

	src, dst := sess.SelectorViews(cities, sess.Finder.Snapshot())
	if src.Open || !dst.Open {
		t.Errorf("expected only destination open: source=%v destination=%v", src.Open, dst.Open)
	}

	sess.CloseSelectors()
	src, dst = sess.SelectorViews(cities, sess.Finder.Snapshot())
	if src.Open || dst.Open {
		t.Error("expected both closed")
	}
}

func TestToggleMap(t *testing.T) {
	store := newTestStore(time.Minute)
	sess, _ := store.GetOrCreate("")

	if !sess.ShowMap() {
		t.Error("expected map shown by default")
	}
	sess.ToggleMap()
	if sess.ShowMap() {
		t.Error("expected map hidden after toggle")
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"source", "destination"} {
		if _, err := ParseField(s); err != nil {
			t.Errorf("ParseField(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseField("via"); err == nil {
		t.Error("expected error for unknown selector")
	}
}
