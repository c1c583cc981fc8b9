package finder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/you/pathfinder/models"
	"github.com/you/pathfinder/pathclient"
)

// fakeClient records calls and answers from a fixed outcome. When gate is
// non-nil each call blocks until a value is received from it.
type fakeClient struct {
	mu     sync.Mutex
	calls  []models.PathRequest
	result *models.PathResult
	err    error
	gate   chan struct{}
}

func (f *fakeClient) FindPath(ctx context.Context, source, destination string) (*models.PathResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, models.PathRequest{Source: source, Destination: destination})
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return f.result, f.err
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func wait(t *testing.T, done <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s := <-done:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for path request to resolve")
		return Snapshot{}
	}
}

func TestFindValidation(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		destination string
		message     string
	}{
		{"both empty", "", "", MsgSelectBoth},
		{"empty source", "", "Gudivada", MsgSelectBoth},
		{"empty destination", "Pedana", "", MsgSelectBoth},
		{"same city", "Pedana", "Pedana", MsgSameCity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{}
			o := New(client)
			o.SetSource(tc.source)
			o.SetDestination(tc.destination)

			done, err := o.FindShortestPath(context.Background())
			if done != nil {
				t.Error("expected no completion channel")
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Message != tc.message {
				t.Fatalf("expected validation error %q, got %v", tc.message, err)
			}

			if client.callCount() != 0 {
				t.Errorf("expected no network call, got %d", client.callCount())
			}

			s := o.Snapshot()
			if s.Error != tc.message || s.Status != StatusFailed || s.Loading {
				t.Errorf("unexpected snapshot: %+v", s)
			}
		})
	}
}

func TestFindSuccess(t *testing.T) {
	client := &fakeClient{result: &models.PathResult{Path: []string{"A", "B", "C"}, Distance: 42}}
	o := New(client)
	o.SetSource("A")
	o.SetDestination("C")

	done, err := o.FindShortestPath(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := wait(t, done)
	if s.Status != StatusSucceeded || s.Loading {
		t.Fatalf("expected succeeded, got %+v", s)
	}
	if s.Result == nil || len(s.Result.Path) != 3 || s.Result.Distance != 42 {
		t.Errorf("unexpected result: %+v", s.Result)
	}
	if s.Error != "" {
		t.Errorf("expected no error, got %q", s.Error)
	}
	if s.RequestID == "" {
		t.Error("expected a request id")
	}

	if calls := client.calls; len(calls) != 1 || calls[0].Source != "A" || calls[0].Destination != "C" {
		t.Errorf("unexpected calls: %+v", calls)
	}
}

func TestFindServerError(t *testing.T) {
	client := &fakeClient{err: &pathclient.ServerError{StatusCode: 404, Message: "no route"}}
	o := New(client, WithHint("check the service"))
	o.SetSource("A")
	o.SetDestination("B")

	done, err := o.FindShortestPath(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := wait(t, done)
	if s.Status != StatusFailed || s.Error != "no route" || s.Result != nil || s.Loading {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if s.Hint != "check the service" {
		t.Errorf("expected hint under server errors, got %q", s.Hint)
	}
}

func TestFindTransportErrorClearsPreviousResult(t *testing.T) {
	client := &fakeClient{result: &models.PathResult{Path: []string{"A", "B"}, Distance: 7}}
	o := New(client, WithHint("check the service"))
	o.SetSource("A")
	o.SetDestination("B")

	done, _ := o.FindShortestPath(context.Background())
	if s := wait(t, done); s.Result == nil {
		t.Fatal("expected first request to succeed")
	}

	client.mu.Lock()
	client.result = nil
	client.err = &pathclient.TransportError{Op: "http", Err: errors.New("connection refused")}
	client.mu.Unlock()

	done, err := o.FindShortestPath(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := wait(t, done)
	if s.Loading || s.Result != nil {
		t.Errorf("expected loading cleared and result cleared, got %+v", s)
	}
	if s.Error != pathclient.MsgConnectFailed || s.Hint != "check the service" {
		t.Errorf("unexpected error/hint: %q / %q", s.Error, s.Hint)
	}
}

func TestLoadingClearsPriorStateAndBlocksReentry(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{result: &models.PathResult{Path: []string{"A", "B"}, Distance: 1}, gate: gate}
	o := New(client)
	o.SetSource("A")
	o.SetDestination("A")
	o.FindShortestPath(context.Background())

	o.SetDestination("B")
	done, err := o.FindShortestPath(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := o.Snapshot()
	if !s.Loading || s.Status != StatusLoading || s.Error != "" || s.Result != nil {
		t.Errorf("unexpected loading snapshot: %+v", s)
	}

	if _, err := o.FindShortestPath(context.Background()); !errors.Is(err, ErrRequestInFlight) {
		t.Errorf("expected ErrRequestInFlight, got %v", err)
	}

	close(gate)
	if s := wait(t, done); s.Status != StatusSucceeded {
		t.Errorf("expected succeeded, got %+v", s)
	}
	if client.callCount() != 1 {
		t.Errorf("expected exactly one call, got %d", client.callCount())
	}
}

func TestRequestSurvivesCallerCancellation(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{result: &models.PathResult{Path: []string{"A", "B"}, Distance: 1}, gate: gate}
	o := New(client)
	o.SetSource("A")
	o.SetDestination("B")

	ctx, cancel := context.WithCancel(context.Background())
	done, err := o.FindShortestPath(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancel()
	close(gate)

	if s := wait(t, done); s.Status != StatusSucceeded {
		t.Errorf("expected request to resolve despite cancellation, got %+v", s)
	}
}

func TestSwapCities(t *testing.T) {
	client := &fakeClient{err: &pathclient.ServerError{StatusCode: 500, Message: "boom"}}
	o := New(client)
	o.SetSource("Nuzvid")
	o.SetDestination("Pedana")

	done, _ := o.FindShortestPath(context.Background())
	before := wait(t, done)

	o.SwapCities()
	after := o.Snapshot()

	if after.Source != "Pedana" || after.Destination != "Nuzvid" {
		t.Errorf("unexpected swap result: %+v", after)
	}
	if after.Status != before.Status || after.Error != before.Error || after.Loading != before.Loading || after.RequestID != before.RequestID {
		t.Errorf("swap changed other state: before %+v, after %+v", before, after)
	}
	if client.callCount() != 1 {
		t.Errorf("swap issued a request")
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{result: &models.PathResult{Path: []string{"A", "B"}, Distance: 3}, gate: gate}
	o := New(client)
	o.SetSource("A")
	o.SetDestination("B")

	done, err := o.FindShortestPath(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o.SetDestination("C")
	close(gate)

	s := wait(t, done)
	if s.Status != StatusIdle || s.Result != nil || s.Loading {
		t.Errorf("expected stale response discarded, got %+v", s)
	}
}

func TestStaleResponseKept(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{result: &models.PathResult{Path: []string{"A", "B"}, Distance: 3}, gate: gate}
	o := New(client, WithStaleResponses(true))
	o.SetSource("A")
	o.SetDestination("B")

	done, _ := o.FindShortestPath(context.Background())
	o.SwapCities()
	close(gate)

	s := wait(t, done)
	if s.Status != StatusSucceeded || s.Result == nil {
		t.Errorf("expected stale response applied, got %+v", s)
	}
	if s.Source != "B" || s.Destination != "A" {
		t.Errorf("expected swapped selection kept, got %+v", s)
	}
}

func TestDismissError(t *testing.T) {
	o := New(&fakeClient{})
	o.SetSource("Pedana")
	o.FindShortestPath(context.Background())

	o.DismissError()
	s := o.Snapshot()
	if s.Error != "" || s.Status != StatusIdle {
		t.Errorf("expected error dismissed, got %+v", s)
	}
	if s.Source != "Pedana" {
		t.Errorf("dismiss reset the selection: %+v", s)
	}
}

func TestNilResultTreatedAsTransportFailure(t *testing.T) {
	o := New(&fakeClient{})
	o.SetSource("A")
	o.SetDestination("B")

	done, _ := o.FindShortestPath(context.Background())
	s := wait(t, done)
	if s.Status != StatusFailed || s.Error != pathclient.MsgConnectFailed {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}

func TestValidationFailureHintAndResult(t *testing.T) {
	client := &fakeClient{result: &models.PathResult{Path: []string{"A", "B"}, Distance: 5}}
	o := New(client, WithHint("check the service"))
	o.SetSource("A")
	o.SetDestination("B")

	done, _ := o.FindShortestPath(context.Background())
	if s := wait(t, done); s.Status != StatusSucceeded {
		t.Fatalf("expected first request to succeed, got %+v", s)
	}

	o.SetDestination("A")
	if _, err := o.FindShortestPath(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}

	s := o.Snapshot()
	if s.Status != StatusFailed || s.Error != MsgSameCity {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if s.Result != nil {
		t.Errorf("failed state kept a result: %+v", s.Result)
	}
	if s.Hint != "check the service" {
		t.Errorf("expected hint under validation errors, got %q", s.Hint)
	}
	if client.callCount() != 1 {
		t.Errorf("validation failure issued a request")
	}
}

func TestCanFind(t *testing.T) {
	tests := []struct {
		snap Snapshot
		want bool
	}{
		{Snapshot{}, false},
		{Snapshot{Source: "A"}, false},
		{Snapshot{Source: "A", Destination: "B"}, true},
		{Snapshot{Source: "A", Destination: "B", Loading: true}, false},
	}
	for _, tc := range tests {
		if got := tc.snap.CanFind(); got != tc.want {
			t.Errorf("CanFind(%+v) = %v, expected %v", tc.snap, got, tc.want)
		}
	}
}
