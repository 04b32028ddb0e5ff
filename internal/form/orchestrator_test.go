package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/mock"
	"github.com/MKhiriev/go-intern-verify/internal/service"
	"github.com/MKhiriev/go-intern-verify/internal/utils"
	"github.com/MKhiriev/go-intern-verify/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ── fakes ────────────────────────────────────────────────────────────────────

// journal records calls of every collaborator in order.
type journal struct {
	mu     sync.Mutex
	events []string
}

func (j *journal) add(event string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, event)
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.events...)
}

type fakeBusy struct{ j *journal }

func (b *fakeBusy) SetBusy(busy bool) {
	if busy {
		b.j.add("busy:on")
		return
	}
	b.j.add("busy:off")
}

type fakePresenter struct {
	j     *journal
	shown []models.Outcome
	err   error
	panic bool
}

func (p *fakePresenter) Show(outcome models.Outcome) error {
	p.j.add("show:" + string(outcome.Status))
	p.shown = append(p.shown, outcome)
	if p.panic {
		panic("render exploded")
	}
	return p.err
}

func (p *fakePresenter) Clear() { p.j.add("clear") }

// funcVerifier adapts a function to service.VerificationService.
type funcVerifier func(ctx context.Context, identifier string) (models.Outcome, error)

func (f funcVerifier) Verify(ctx context.Context, identifier string) (models.Outcome, error) {
	return f(ctx, identifier)
}

func newTestOrchestrator(verifier service.VerificationService, opts ...Option) (*Orchestrator, *journal, *fakePresenter) {
	return newJournaledOrchestrator(&journal{}, verifier, opts...)
}

func newJournaledOrchestrator(j *journal, verifier service.VerificationService, opts ...Option) (*Orchestrator, *journal, *fakePresenter) {
	presenter := &fakePresenter{j: j}
	return NewOrchestrator(verifier, &fakeBusy{j: j}, presenter, opts...), j, presenter
}

func journalingVerifier(j *journal, outcome models.Outcome, err error) service.VerificationService {
	return funcVerifier(func(_ context.Context, identifier string) (models.Outcome, error) {
		j.add("verify:" + identifier)
		return outcome, err
	})
}

// ── scenarios ────────────────────────────────────────────────────────────────

func TestVerify_SimulatedScenarios(t *testing.T) {
	simulated := service.NewSimulatedVerifier(config.ClientSimulation{
		Confirmed:   []string{"VOC-123"},
		UnderReview: []string{"VOC-456"},
	}, logger.Nop())

	tests := []struct {
		name  string
		input string
		want  models.Outcome
	}{
		{"lower case confirmed", "voc-123", models.VerifiedOutcome("voc-123")},
		{"under review", "VOC-456", models.PendingOutcome("VOC-456")},
		{"unknown", "xyz-999", models.NotFoundOutcome("xyz-999")},
		{"surrounding whitespace", "  VOC-123\t", models.VerifiedOutcome("VOC-123")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, j, presenter := newTestOrchestrator(simulated)

			require.True(t, o.Verify(context.Background(), tt.input))

			require.Len(t, presenter.shown, 1)
			assert.Equal(t, tt.want, presenter.shown[0])
			assert.Equal(t, []string{"clear", "busy:on", "show:" + string(tt.want.Status), "busy:off"}, j.list())
			assert.Equal(t, StateIdle, o.State())
		})
	}
}

func TestVerify_ForcedTransportFailure(t *testing.T) {
	simulated := service.NewSimulatedVerifier(config.ClientSimulation{FailTransport: true}, logger.Nop())
	o, j, presenter := newTestOrchestrator(simulated)

	require.True(t, o.Verify(context.Background(), "VOC-123"))

	require.Len(t, presenter.shown, 1)
	assert.Equal(t, models.NetworkErrorOutcome(), presenter.shown[0])
	assert.Equal(t, []string{"clear", "busy:on", "show:network_error", "busy:off"}, j.list())
}

// ── busy contract ────────────────────────────────────────────────────────────

func TestVerify_BusyBracketsTheCall(t *testing.T) {
	j := &journal{}
	o, _, _ := newJournaledOrchestrator(j, journalingVerifier(j, models.PendingOutcome("VOC-456"), nil))

	o.Verify(context.Background(), "VOC-456")

	assert.Equal(t, []string{"clear", "busy:on", "verify:VOC-456", "show:pending", "busy:off"}, j.list())
}

func TestVerify_BusyClearedOnTransportFailure(t *testing.T) {
	j := &journal{}
	o, _, _ := newJournaledOrchestrator(j, journalingVerifier(j, models.Outcome{}, errors.New("connection refused")))

	o.Verify(context.Background(), "VOC-123")

	assert.Equal(t, []string{"clear", "busy:on", "verify:VOC-123", "show:network_error", "busy:off"}, j.list())
	assert.Equal(t, StateIdle, o.State())
}

func TestVerify_EmptyInputIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockVerificationService(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

	o, j, _ := newTestOrchestrator(verifier)

	for _, input := range []string{"", "   ", "\t\n"} {
		assert.False(t, o.Verify(context.Background(), input))
	}

	assert.Empty(t, j.list())
	assert.Equal(t, StateIdle, o.State())
}

// ── re-entrancy and staleness ────────────────────────────────────────────────

func TestSubmit_IgnoredWhilePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockVerificationService(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "VOC-123").Return(models.VerifiedOutcome("VOC-123"), nil).Times(1)

	o, j, presenter := newTestOrchestrator(verifier)

	dispatch, ok := o.Submit("VOC-123")
	require.True(t, ok)
	assert.Equal(t, StatePending, o.State())

	_, again := o.Submit("VOC-456")
	assert.False(t, again)

	require.NoError(t, o.Settle(dispatch.Run(context.Background())))

	assert.Len(t, presenter.shown, 1)
	assert.Equal(t, []string{"clear", "busy:on", "show:verified", "busy:off"}, j.list())
}

func TestSettle_DuplicateSettlementIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockVerificationService(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "VOC-123").Return(models.VerifiedOutcome("VOC-123"), nil)

	o, j, presenter := newTestOrchestrator(verifier)

	dispatch, ok := o.Submit("VOC-123")
	require.True(t, ok)
	settlement := dispatch.Run(context.Background())

	require.NoError(t, o.Settle(settlement))
	require.NoError(t, o.Settle(settlement))

	assert.Len(t, presenter.shown, 1)
	assert.Equal(t, []string{"clear", "busy:on", "show:verified", "busy:off"}, j.list())
}

func TestSettle_OlderSequenceIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockVerificationService(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(models.VerifiedOutcome("VOC-123"), nil).Times(2)

	o, _, presenter := newTestOrchestrator(verifier)

	first, _ := o.Submit("VOC-123")
	firstSettlement := first.Run(context.Background())
	require.NoError(t, o.Settle(firstSettlement))

	second, ok := o.Submit("VOC-123")
	require.True(t, ok)
	assert.Greater(t, second.Seq, first.Seq)

	require.NoError(t, o.Settle(firstSettlement))
	assert.Equal(t, StatePending, o.State(), "stale settlement must not finish the new submission")

	require.NoError(t, o.Settle(second.Run(context.Background())))
	assert.Len(t, presenter.shown, 2)
	assert.Equal(t, StateIdle, o.State())
}

func TestSubmit_ConcurrentCallersGetOneDispatch(t *testing.T) {
	o, j, _ := newTestOrchestrator(funcVerifier(func(context.Context, string) (models.Outcome, error) {
		return models.VerifiedOutcome("VOC-123"), nil
	}))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted []Dispatch
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d, ok := o.Submit("VOC-123"); ok {
				mu.Lock()
				accepted = append(accepted, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, accepted, 1)
	require.NoError(t, o.Settle(accepted[0].Run(context.Background())))
	assert.Equal(t, []string{"clear", "busy:on", "show:verified", "busy:off"}, j.list())
}

// ── failure modes ────────────────────────────────────────────────────────────

func TestDispatch_TimeoutBecomesNetworkError(t *testing.T) {
	slow := funcVerifier(func(ctx context.Context, _ string) (models.Outcome, error) {
		<-ctx.Done()
		return models.Outcome{}, ctx.Err()
	})
	o, j, presenter := newTestOrchestrator(slow, WithRequestTimeout(20*time.Millisecond))

	dispatch, ok := o.Submit("VOC-123")
	require.True(t, ok)

	settlement := dispatch.Run(context.Background())
	assert.ErrorIs(t, settlement.Err, context.DeadlineExceeded)
	assert.False(t, settlement.Resolved())

	require.NoError(t, o.Settle(settlement))
	assert.Equal(t, models.NetworkErrorOutcome(), presenter.shown[0])
	assert.Equal(t, []string{"clear", "busy:on", "show:network_error", "busy:off"}, j.list())
}

func TestDispatch_PanicBecomesNetworkError(t *testing.T) {
	exploding := funcVerifier(func(context.Context, string) (models.Outcome, error) {
		panic("nil map write")
	})
	o, j, presenter := newTestOrchestrator(exploding)

	require.True(t, o.Verify(context.Background(), "VOC-123"))

	assert.Equal(t, models.NetworkErrorOutcome(), presenter.shown[0])
	assert.Equal(t, []string{"clear", "busy:on", "show:network_error", "busy:off"}, j.list())
}

func TestDispatch_CarriesTraceID(t *testing.T) {
	var seen []string
	recording := funcVerifier(func(ctx context.Context, identifier string) (models.Outcome, error) {
		traceID, ok := utils.GetTraceIDFromContext(ctx)
		require.True(t, ok)
		seen = append(seen, traceID)
		return models.NotFoundOutcome(identifier), nil
	})
	o, _, _ := newTestOrchestrator(recording)

	first, ok := o.Submit("xyz-999")
	require.True(t, ok)
	settlement := first.Run(context.Background())
	require.NoError(t, o.Settle(settlement))

	second, ok := o.Submit("xyz-999")
	require.True(t, ok)
	require.NoError(t, o.Settle(second.Run(context.Background())))

	require.Len(t, seen, 2)
	assert.Equal(t, first.TraceID, seen[0])
	assert.Equal(t, first.TraceID, settlement.TraceID)
	assert.Equal(t, second.TraceID, seen[1])
	assert.NotEqual(t, seen[0], seen[1])
}

func TestDispatch_RunPanicSettlementCarriesSentinel(t *testing.T) {
	settlement := Dispatch{Seq: 7, Identifier: "VOC-123"}.Run(context.Background())

	assert.Equal(t, uint64(7), settlement.Seq)
	assert.ErrorIs(t, settlement.Err, ErrVerifierPanicked)
}

func TestSettle_PresenterErrorStillReleasesBusy(t *testing.T) {
	o, j, presenter := newTestOrchestrator(funcVerifier(func(context.Context, string) (models.Outcome, error) {
		return models.PendingOutcome("VOC-456"), nil
	}))
	presenter.err = errors.New("terminal gone")

	dispatch, _ := o.Submit("VOC-456")
	err := o.Settle(dispatch.Run(context.Background()))

	assert.ErrorIs(t, err, presenter.err)
	assert.Equal(t, []string{"clear", "busy:on", "show:pending", "busy:off"}, j.list())
	assert.Equal(t, StateIdle, o.State())
}

func TestSettle_PresenterPanicStillReleasesBusy(t *testing.T) {
	o, j, presenter := newTestOrchestrator(funcVerifier(func(context.Context, string) (models.Outcome, error) {
		return models.VerifiedOutcome("VOC-123"), nil
	}))
	presenter.panic = true

	dispatch, _ := o.Submit("VOC-123")
	settlement := dispatch.Run(context.Background())

	assert.Panics(t, func() { _ = o.Settle(settlement) })
	assert.Equal(t, []string{"clear", "busy:on", "show:verified", "busy:off"}, j.list())
	assert.Equal(t, StateIdle, o.State())

	_, ok := o.Submit("VOC-123")
	assert.True(t, ok, "form must accept a new submission after a presenter panic")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "validating", StateValidating.String())
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "settling", StateSettling.String())
	assert.Equal(t, "unknown", State(42).String())
}
