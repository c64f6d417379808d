package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Transport errors
const (
	// ErrCodeRequest indicates the call failed before a response was received.
	ErrCodeRequest ErrorCode = "REQUEST_FAILED"
)

// Response errors
const (
	// ErrCodeResponse indicates the server answered with a non-success status.
	ErrCodeResponse ErrorCode = "RESPONSE_ERROR"
	// ErrCodeUnauthorized indicates the server answered 401.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeNotFound indicates the server answered 404.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource being created already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Local errors
const (
	// ErrCodeParse indicates a JSON payload could not be parsed or serialized.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeConfiguration indicates invalid client configuration.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeInvalidArgument indicates an invalid argument to an operation.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// parents maps each code to the code it specialises.
var parents = map[ErrorCode]ErrorCode{
	ErrCodeResponse:      ErrCodeRequest,
	ErrCodeUnauthorized:  ErrCodeResponse,
	ErrCodeNotFound:      ErrCodeResponse,
	ErrCodeAlreadyExists: ErrCodeResponse,
}

// Is reports whether code equals target or specialises it.
func (code ErrorCode) Is(target ErrorCode) bool {
	for c := code; c != ""; c = parents[c] {
		if c == target {
			return true
		}
	}
	return false
}

// String returns the code as a string.
func (code ErrorCode) String() string { return string(code) }
