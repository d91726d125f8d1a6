package session

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/xms-confctl/internal/otel"
)

var (
	// Participants
	callsAdmitted metric.Int64Counter
	callsRejected metric.Int64Counter
	activeCallers metric.Int64UpDownCounter

	// Conference lifecycle
	conferencesCreated   metric.Int64Counter
	conferencesDestroyed metric.Int64Counter
	grandResets          metric.Int64Counter

	// Event handling
	eventsHandled  metric.Int64Counter
	eventsRejected metric.Int64Counter

	// Screen operations
	layoutChanges metric.Int64Counter
	rotations     metric.Int64Counter
	playsStarted  metric.Int64Counter
	recordings    metric.Int64Counter
	clicksApplied metric.Int64Counter
)

func init() {
	f := intotel.NewFactory(intotel.ScopeSession, intotel.PrefixSession)

	f.Int64Counter(&callsAdmitted, "calls.admitted",
		metric.WithDescription("Calls answered into the conference"))

	f.Int64Counter(&callsRejected, "calls.rejected",
		metric.WithDescription("Calls hung up because the conference was full"))

	f.Int64UpDownCounter(&activeCallers, "calls.active",
		metric.WithDescription("Callers currently admitted"))

	f.Int64Counter(&conferencesCreated, "conferences.created",
		metric.WithDescription("Conferences created on the media server"))

	f.Int64Counter(&conferencesDestroyed, "conferences.destroyed",
		metric.WithDescription("Conferences torn down"))

	f.Int64Counter(&grandResets, "resets",
		metric.WithDescription("Grand resets requested by keypad or operator"))

	f.Int64Counter(&eventsHandled, "events.handled",
		metric.WithDescription("Media server events dispatched, by type"))

	f.Int64Counter(&eventsRejected, "events.rejected",
		metric.WithDescription("Events ignored or only partly applied, by reason"))

	f.Int64Counter(&layoutChanges, "layout.changes",
		metric.WithDescription("Layout cycles"))

	f.Int64Counter(&rotations, "rotations",
		metric.WithDescription("Region rotations"))

	f.Int64Counter(&playsStarted, "plays.started",
		metric.WithDescription("Clips started, full screen or in a region"))

	f.Int64Counter(&recordings, "recordings.started",
		metric.WithDescription("Conference recordings started"))

	f.Int64Counter(&clicksApplied, "clicks.applied",
		metric.WithDescription("Authorized mute/hide clicks applied"))
}
