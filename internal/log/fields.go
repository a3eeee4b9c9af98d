package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldCallID    = "call_id"
	FieldEndpoint  = "endpoint"
	FieldStatus    = "status_code"
	FieldDuration  = "duration_ms"
	FieldSuccess   = "success"
	FieldError     = "error"
	FieldErrorCode = "error_code"
	FieldRange     = "range"
	FieldStart     = "start"
	FieldEnd       = "end"
	FieldFilter    = "filter"
	FieldDays      = "days"
	FieldPath      = "path"
	FieldTimeout   = "timeout_ms"
)

// Components
const (
	ComponentApp     = "app"
	ComponentAPI     = "api"
	ComponentService = "service"
	ComponentCLI     = "cli"
	ComponentConfig  = "config"
)
