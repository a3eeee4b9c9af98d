package contract

type RequestErrorCode string

const (
	ReqErrInvalidRange  RequestErrorCode = "INVALID_RANGE"
	ReqErrInvalidFilter RequestErrorCode = "INVALID_FILTER"
)

// RequestError reports a request rejected before any I/O happened.
type RequestError struct {
	Code    RequestErrorCode
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
