package xms

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/xms-confctl/internal/otel"
)

var (
	// Commands
	requests        metric.Int64Counter
	requestDuration metric.Float64Histogram

	// Event stream
	eventsReceived metric.Int64Counter
	resubscribes   metric.Int64Counter
)

func init() {
	f := intotel.NewFactory(intotel.ScopeXMS, intotel.PrefixXMS)

	f.Int64Counter(&requests, "requests",
		metric.WithDescription("REST commands sent, by operation and status"))

	f.Float64Histogram(&requestDuration, "request.duration",
		metric.WithDescription("REST command round trip"),
		metric.WithUnit("ms"))

	f.Int64Counter(&eventsReceived, "events.received",
		metric.WithDescription("Events decoded from the long-poll stream, by type"))

	f.Int64Counter(&resubscribes, "resubscribes",
		metric.WithDescription("Event handler sessions that ended and were recreated"))
}
