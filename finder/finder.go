// Package finder holds the request orchestrator: the selected source and
// destination, their validation, the single outbound path request and the
// lifecycle state machine
//
//	idle ──find──▶ loading ──▶ succeeded | failed
//	  ▲                              │
//	  └──────────dismiss (failed)────┘
//
// Completion of the outbound request is delivered as a message: the request
// goroutine applies its transition under the orchestrator lock and then
// sends the resulting Snapshot on the channel returned by FindShortestPath.
package finder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/you/pathfinder/models"
	"github.com/you/pathfinder/pathclient"
)

// Status is the request lifecycle state
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Validation messages
const (
	MsgSelectBoth = "Please select both source and destination cities"
	MsgSameCity   = "Source and destination cannot be the same"
)

// ErrRequestInFlight is returned when a find is attempted while one is loading
var ErrRequestInFlight = errors.New("a path request is already in flight")

// ValidationError means the selection was rejected before any request was made
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PathFinder resolves a route between two city names
type PathFinder interface {
	FindPath(ctx context.Context, source, destination string) (*models.PathResult, error)
}

// Snapshot is a consistent copy of the orchestrator state
type Snapshot struct {
	Source      string             `json:"source"`
	Destination string             `json:"destination"`
	Status      Status             `json:"status"`
	Loading     bool               `json:"loading"`
	Result      *models.PathResult `json:"result,omitempty"`
	Error       string             `json:"error,omitempty"`
	Hint        string             `json:"hint,omitempty"`
	RequestID   string             `json:"requestId,omitempty"`
}

// CanFind reports whether the find action should be offered
func (s Snapshot) CanFind() bool {
	return !s.Loading && s.Source != "" && s.Destination != ""
}

type request struct {
	id          uuid.UUID
	source      string
	destination string
}

// Orchestrator owns one browser session's selection and request state.
// Safe for concurrent use.
type Orchestrator struct {
	client    PathFinder
	logger    *slog.Logger
	keepStale bool
	hint      string

	mu          sync.Mutex
	source      string
	destination string
	status      Status
	result      *models.PathResult
	errMsg      string
	errHint     string
	lastID      uuid.UUID
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithLogger sets the logger; the default discards everything
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithStaleResponses controls what happens to a response that arrives after
// the selection changed. When keep is false (the default) it is discarded and
// the orchestrator returns to idle; when true it is applied like any other.
func WithStaleResponses(keep bool) Option {
	return func(o *Orchestrator) { o.keepStale = keep }
}

// WithHint sets the advice shown under every error message
func WithHint(hint string) Option {
	return func(o *Orchestrator) { o.hint = hint }
}

// New creates an idle Orchestrator with an empty selection
func New(client PathFinder, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client: client,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		status: StatusIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetSource changes the source city
func (o *Orchestrator) SetSource(city string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.source = city
}

// SetDestination changes the destination city
func (o *Orchestrator) SetDestination(city string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.destination = city
}

// SwapCities exchanges source and destination. Nothing else changes.
func (o *Orchestrator) SwapCities() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.source, o.destination = o.destination, o.source
}

// DismissError clears a displayed error. Selections are kept and nothing is resubmitted.
func (o *Orchestrator) DismissError() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status != StatusFailed {
		return
	}
	o.status = StatusIdle
	o.errMsg = ""
	o.errHint = ""
}

// Snapshot returns the current state
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// FindShortestPath validates the selection and starts the path request.
//
// A rejected selection moves the orchestrator to failed and returns a
// *ValidationError without contacting the service. While a request is
// loading it returns ErrRequestInFlight and changes nothing. Otherwise it
// enters loading and returns a channel that receives the terminal Snapshot
// once the request resolves. The request is detached from ctx's
// cancellation: once issued it always resolves.
func (o *Orchestrator) FindShortestPath(ctx context.Context) (<-chan Snapshot, error) {
	o.mu.Lock()

	if o.status == StatusLoading {
		o.mu.Unlock()
		return nil, ErrRequestInFlight
	}

	if msg := validate(o.source, o.destination); msg != "" {
		o.failLocked(msg)
		o.mu.Unlock()
		return nil, &ValidationError{Message: msg}
	}

	req := &request{
		id:          uuid.New(),
		source:      o.source,
		destination: o.destination,
	}
	o.status = StatusLoading
	o.result = nil
	o.errMsg = ""
	o.errHint = ""
	o.lastID = req.id
	o.mu.Unlock()

	o.logger.Info("path request started",
		"request_id", req.id.String(),
		"source", req.source,
		"destination", req.destination,
	)

	done := make(chan Snapshot, 1)
	go o.run(context.WithoutCancel(ctx), req, done)
	return done, nil
}

func (o *Orchestrator) run(ctx context.Context, req *request, done chan<- Snapshot) {
	result, err := o.client.FindPath(ctx, req.source, req.destination)
	if err == nil && result == nil {
		err = &pathclient.TransportError{Op: "find path", Err: errors.New("empty result")}
	}
	done <- o.complete(req, result, err)
	close(done)
}

// complete applies the outcome of req. Loading is always cleared.
func (o *Orchestrator) complete(req *request, result *models.PathResult, err error) Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	log := o.logger.With("request_id", req.id.String())

	if !o.keepStale && (o.source != req.source || o.destination != req.destination) {
		log.Info("discarding stale path response",
			"requested_source", req.source,
			"requested_destination", req.destination,
			"source", o.source,
			"destination", o.destination,
		)
		o.status = StatusIdle
		return o.snapshotLocked()
	}

	if err != nil {
		log.Warn("path request failed", "error", err, "transport", pathclient.IsTransport(err))
		o.failLocked(pathclient.UserMessage(err))
		return o.snapshotLocked()
	}

	log.Info("path request succeeded", "stops", len(result.Path), "distance", result.Distance)
	o.status = StatusSucceeded
	o.result = result
	return o.snapshotLocked()
}

// failLocked enters failed. The previous result goes with it: a failed
// session never shows a route.
func (o *Orchestrator) failLocked(msg string) {
	o.status = StatusFailed
	o.result = nil
	o.errMsg = msg
	o.errHint = o.hint
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	s := Snapshot{
		Source:      o.source,
		Destination: o.destination,
		Status:      o.status,
		Loading:     o.status == StatusLoading,
		Error:       o.errMsg,
		Hint:        o.errHint,
	}
	if o.lastID != uuid.Nil {
		s.RequestID = o.lastID.String()
	}
	if o.result != nil {
		r := *o.result
		r.Path = append([]string(nil), o.result.Path...)
		s.Result = &r
	}
	return s
}

func validate(source, destination string) string {
	if source == "" || destination == "" {
		return MsgSelectBoth
	}
	if source == destination {
		return MsgSameCity
	}
	return ""
}
