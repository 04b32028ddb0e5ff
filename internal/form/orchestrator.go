package form

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/service"
	"github.com/MKhiriev/go-intern-verify/internal/utils"
	"github.com/MKhiriev/go-intern-verify/models"
)

// Orchestrator owns the lifecycle of one verification form. It serialises
// its own transitions, so Submit and Settle may be called from different
// goroutines, but the busy controller and presenter are only ever called
// from inside those two methods.
type Orchestrator struct {
	mu    sync.Mutex
	state State
	seq   uint64

	verifier  service.VerificationService
	busy      BusyController
	presenter Presenter

	requestTimeout time.Duration
	logger         *logger.Logger
}

// Option configures an [Orchestrator].
type Option func(*Orchestrator)

// WithRequestTimeout bounds every verification call. Expiry is shown as a
// network error. Zero disables the bound.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		o.requestTimeout = timeout
	}
}

// WithLogger sets the logger used for lifecycle debug events.
func WithLogger(log *logger.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = log
	}
}

// NewOrchestrator wires the verification service with the form's busy
// controller and result presenter.
func NewOrchestrator(verifier service.VerificationService, busy BusyController, presenter Presenter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		state:     StateIdle,
		verifier:  verifier,
		busy:      busy,
		presenter: presenter,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// State returns the current lifecycle phase.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Submit starts a verification of raw. It returns false without side effects
// when a previous submission is still in flight or when raw is blank after
// trimming. Otherwise the previous result is cleared, the form turns busy and
// the returned [Dispatch] must be run and its settlement passed to Settle.
func (o *Orchestrator) Submit(raw string) (Dispatch, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateIdle {
		o.logger.Debug().Str("state", o.state.String()).Msg("submit ignored, verification in flight")
		return Dispatch{}, false
	}

	o.state = StateValidating
	identifier, ok := models.NormalizeIdentifier(raw)
	if !ok {
		o.state = StateIdle
		o.logger.Debug().Msg("submit ignored, empty identifier")
		return Dispatch{}, false
	}

	o.presenter.Clear()
	o.busy.SetBusy(true)
	o.seq++
	o.state = StatePending
	traceID := utils.NewTraceID()

	o.logger.Debug().
		Uint64("seq", o.seq).
		Str("trace_id", traceID).
		Str("identifier", identifier).
		Msg("verification dispatched")

	return Dispatch{
		Seq:        o.seq,
		Identifier: identifier,
		TraceID:    traceID,
		verifier:   o.verifier,
		timeout:    o.requestTimeout,
		logger:     o.logger,
	}, true
}

// Settle presents the result of the in-flight submission and returns the
// form to idle. A failed call is shown as [models.NetworkErrorOutcome].
// Settlements that do not belong to the in-flight submission are ignored.
// The busy flag is released even if the presenter fails or panics; the
// presenter's error is returned.
func (o *Orchestrator) Settle(settlement Settlement) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StatePending || settlement.Seq != o.seq {
		o.logger.Debug().
			Uint64("seq", settlement.Seq).
			Uint64("current_seq", o.seq).
			Str("state", o.state.String()).
			Msg("stale settlement ignored")
		return nil
	}

	o.state = StateSettling
	defer func() {
		o.busy.SetBusy(false)
		o.state = StateIdle
	}()

	outcome := settlement.Outcome
	if !settlement.Resolved() {
		o.logger.Debug().Err(settlement.Err).
			Uint64("seq", settlement.Seq).
			Str("trace_id", settlement.TraceID).
			Str("identifier", settlement.Identifier).
			Msg("verification failed")
		outcome = models.NetworkErrorOutcome()
	}

	o.logger.Debug().
		Uint64("seq", settlement.Seq).
		Str("trace_id", settlement.TraceID).
		Str("identifier", settlement.Identifier).
		Str("status", string(outcome.Status)).
		Msg("verification settled")

	return o.presenter.Show(outcome)
}

// Verify runs a whole submission synchronously: Submit, Run and Settle. It
// reports whether a verification was performed.
func (o *Orchestrator) Verify(ctx context.Context, raw string) bool {
	dispatch, ok := o.Submit(raw)
	if !ok {
		return false
	}

	if err := o.Settle(dispatch.Run(ctx)); err != nil {
		o.logger.Err(err).Str("identifier", dispatch.Identifier).Msg("error presenting outcome")
	}

	return true
}
