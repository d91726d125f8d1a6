package control

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/xms-confctl/internal/otel"
)

var (
	// Queue
	eventsQueued metric.Int64Counter
	queueDepth   metric.Int64UpDownCounter
	queueLatency metric.Float64Histogram
	keepalives   metric.Int64Counter

	// Processing
	eventsProcessed metric.Int64Counter
	journalFailures metric.Int64Counter
)

func init() {
	f := intotel.NewFactory(intotel.ScopeReactor, intotel.PrefixReactor)

	f.Int64Counter(&eventsQueued, "jobs.queued",
		metric.WithDescription("Events and operator actions queued"))

	f.Int64UpDownCounter(&queueDepth, "jobs.queue_depth",
		metric.WithDescription("Jobs waiting for the reactor"))

	f.Float64Histogram(&queueLatency, "jobs.wait",
		metric.WithDescription("Time a job spent queued"),
		metric.WithUnit("ms"))

	f.Int64Counter(&keepalives, "keepalives",
		metric.WithDescription("Keepalive events dropped before queueing"))

	f.Int64Counter(&eventsProcessed, "jobs.processed",
		metric.WithDescription("Jobs processed, by name and outcome"))

	f.Int64Counter(&journalFailures, "journal.failures",
		metric.WithDescription("Journal writes that failed"))
}
