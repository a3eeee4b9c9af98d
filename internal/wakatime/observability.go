package wakatime

import (
	"github.com/alexanderramin/wakatime/internal/log"
)

// CallEvent records metadata about a single API request.
type CallEvent struct {
	CallID     string
	Endpoint   string
	StatusCode int
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// Observer receives events about API calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events through a structured logger. Failures are
// logged at warn level; successes at debug, or info when verbose.
type LogObserver struct {
	logger  *log.Logger
	verbose bool
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *log.Logger, verbose bool) *LogObserver {
	return &LogObserver{logger: logger.WithComponent(log.ComponentAPI), verbose: verbose}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	args := []any{
		log.FieldCallID, event.CallID,
		log.FieldEndpoint, event.Endpoint,
		log.FieldStatus, event.StatusCode,
		log.FieldDuration, event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("api call failed", append(args, log.FieldErrorCode, event.ErrorCode)...)
		return
	}
	if o.verbose {
		o.logger.Info("api call", args...)
		return
	}
	o.logger.Debug("api call", args...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
