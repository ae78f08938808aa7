package apierr

// Code is a machine-readable error code returned in API responses.
type Code string

const (
	CodeInvalidRequestBody Code = "INVALID_REQUEST_BODY"
	CodeSourceTooLarge     Code = "SOURCE_TOO_LARGE"
	CodeInternalError      Code = "INTERNAL_ERROR"
)
