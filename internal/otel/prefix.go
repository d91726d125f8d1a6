package otel

// Metric prefixes, one per component that owns instruments.
const (
	PrefixSession = "conf_session"
	PrefixReactor = "conf_reactor"
	PrefixXMS     = "xms_client"
)

// Tracer and meter scope names.
const (
	ScopeSession = "github.com/imtaco/xms-confctl/conference/session"
	ScopeReactor = "github.com/imtaco/xms-confctl/conference/control"
	ScopeXMS     = "github.com/imtaco/xms-confctl/conference/xms"
)
