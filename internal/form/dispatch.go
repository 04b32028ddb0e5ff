package form

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/service"
	"github.com/MKhiriev/go-intern-verify/internal/utils"
	"github.com/MKhiriev/go-intern-verify/models"
)

// Dispatch is the verification task produced by a successful Submit.
type Dispatch struct {
	// Seq identifies the submission. Settlements carrying an older Seq are
	// ignored.
	Seq uint64
	// Identifier is the trimmed identifier to verify.
	Identifier string
	// TraceID is sent with the request so client and server logs of one
	// submission share it.
	TraceID string

	verifier service.VerificationService
	timeout  time.Duration
	logger   *logger.Logger
}

// Settlement is the completion message of a [Dispatch].
type Settlement struct {
	Seq        uint64
	Identifier string
	TraceID    string

	// Outcome is meaningful only when Err is nil.
	Outcome models.Outcome
	// Err is the transport failure, if any.
	Err error
}

// Resolved reports whether the call produced an outcome.
func (s Settlement) Resolved() bool {
	return s.Err == nil
}

// Run performs the verification call. It is safe to run on any goroutine.
// The call is bounded by the orchestrator's request timeout, and a panic in
// the verification service is turned into a failed settlement.
func (d Dispatch) Run(ctx context.Context) (settlement Settlement) {
	settlement = Settlement{Seq: d.Seq, Identifier: d.Identifier, TraceID: d.TraceID}
	if d.TraceID != "" {
		ctx = utils.WithTraceID(ctx, d.TraceID)
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			settlement.Outcome = models.Outcome{}
			settlement.Err = fmt.Errorf("%w: %v", ErrVerifierPanicked, r)
		}
	}()

	start := time.Now()
	settlement.Outcome, settlement.Err = d.verifier.Verify(ctx, d.Identifier)

	if d.logger != nil {
		d.logger.Debug().
			Uint64("seq", d.Seq).
			Str("trace_id", d.TraceID).
			Str("identifier", d.Identifier).
			Bool("resolved", settlement.Err == nil).
			Dur("duration", time.Since(start)).
			Msg("verification call returned")
	}

	return settlement
}
