package control

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/conference/session"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
	intotel "github.com/imtaco/xms-confctl/internal/otel"
)

const ErrStopped errors.Code = "reactor stopped"

// Action runs on the reactor goroutine with exclusive access to the controller.
type Action func(ctx context.Context, c *session.Controller) error

type job struct {
	id       string
	name     string
	event    *conference.Event
	action   Action
	queuedAt time.Time
	// done is closed after an action job ran; nil for events.
	done chan error
}

// Reactor serializes everything that touches the session controller onto
// one goroutine: media server events in arrival order, plus operator
// actions submitted through the same queue.
type Reactor struct {
	ctrl    *session.Controller
	jobs    chan *job
	journal Journal
	clock   clockwork.Clock
	tracer  trace.Tracer
	logger  *log.Logger
	// stopped is closed when Run returns.
	stopped chan struct{}
}

// NewReactor creates a reactor with a queue of queueSize jobs. journal may
// be nil.
func NewReactor(ctrl *session.Controller, queueSize int, journal Journal, logger *log.Logger) *Reactor {
	return newReactorWithClock(ctrl, queueSize, journal, clockwork.NewRealClock(), logger)
}

func newReactorWithClock(
	ctrl *session.Controller,
	queueSize int,
	journal Journal,
	clock clockwork.Clock,
	logger *log.Logger,
) *Reactor {
	if logger == nil {
		panic("logger is required")
	}
	return &Reactor{
		ctrl:    ctrl,
		jobs:    make(chan *job, max(queueSize, 1)),
		journal: journal,
		clock:   clock,
		tracer:  intotel.Tracer(intotel.ScopeReactor),
		logger:  logger,
		stopped: make(chan struct{}),
	}
}

// Enqueue queues ev behind every earlier event. It blocks while the queue
// is full.
func (r *Reactor) Enqueue(ctx context.Context, ev *conference.Event) error {
	if ev == nil {
		return nil
	}
	if ev.Type == conference.EventKeepalive {
		keepalives.Add(ctx, 1)
		return nil
	}
	return r.push(ctx, &job{
		id:       uuid.NewString(),
		name:     ev.Type,
		event:    ev,
		queuedAt: r.clock.Now(),
	})
}

// Submit runs action on the reactor goroutine and waits for its result.
func (r *Reactor) Submit(ctx context.Context, name string, action Action) error {
	j := &job{
		id:       uuid.NewString(),
		name:     name,
		action:   action,
		queuedAt: r.clock.Now(),
		done:     make(chan error, 1),
	}
	if err := r.push(ctx, j); err != nil {
		return err
	}
	select {
	case err := <-j.done:
		return err
	case <-r.stopped:
		// the job may have finished just before Run returned
		select {
		case err := <-j.done:
			return err
		default:
			return errors.Newf(ErrStopped, "%s not run", name)
		}
	case <-ctx.Done():
		return errors.Wrapf(ErrStopped, ctx.Err(), "waiting for %s", name)
	}
}

func (r *Reactor) push(ctx context.Context, j *job) error {
	select {
	case r.jobs <- j:
		eventsQueued.Add(ctx, 1, metric.WithAttributes(attribute.String("name", j.name)))
		queueDepth.Add(ctx, 1)
		return nil
	case <-r.stopped:
		return errors.Newf(ErrStopped, "queue %s", j.name)
	case <-ctx.Done():
		return errors.Wrapf(ErrStopped, ctx.Err(), "queue %s", j.name)
	}
}

// Run processes jobs until ctx is done. Cancellation is only observed
// between jobs; a job that started always runs to completion.
func (r *Reactor) Run(ctx context.Context) error {
	r.logger.Info("reactor started")
	defer close(r.stopped)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reactor stopped", log.Int("pending", len(r.jobs)))
			return nil
		case j := <-r.jobs:
			queueDepth.Add(ctx, -1)
			r.process(ctx, j)
		}
	}
}

func (r *Reactor) process(ctx context.Context, j *job) {
	waited := r.clock.Since(j.queuedAt)
	queueLatency.Record(ctx, float64(waited.Milliseconds()),
		metric.WithAttributes(attribute.String("name", j.name)))

	// a started job finishes even if ctx is cancelled meanwhile
	jobCtx := context.WithoutCancel(ctx)
	jobCtx, span := intotel.StartSpan(jobCtx, r.tracer, "reactor."+j.name,
		attribute.String("job.id", j.id))
	defer span.End()

	var err error
	if j.event != nil {
		err = r.ctrl.HandleEvent(jobCtx, j.event)
	} else {
		err = j.action(jobCtx, r.ctrl)
	}
	intotel.RecordError(span, err)

	outcome := "ok"
	if err != nil {
		outcome = string(errors.CodeOf(err))
	}
	eventsProcessed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("name", j.name),
		attribute.String("outcome", outcome)))

	r.record(jobCtx, j, outcome, waited)
	if j.done != nil {
		j.done <- err
	}
}

func (r *Reactor) record(ctx context.Context, j *job, outcome string, waited time.Duration) {
	if r.journal == nil {
		return
	}
	entry := Entry{
		ID:      j.id,
		Name:    j.name,
		Outcome: outcome,
		Waited:  waited,
		At:      r.clock.Now(),
	}
	if j.event != nil {
		entry.Data = j.event.Data
	}
	if err := r.journal.Record(ctx, entry); err != nil {
		journalFailures.Add(ctx, 1)
		r.logger.Warn("journal write failed", log.String("job", j.id), log.Error(err))
	}
}
