package apierr

import (
	"fmt"
	"net/http"
)

func InvalidRequestBody() *Error {
	return New(CodeInvalidRequestBody, http.StatusBadRequest, "Invalid request body")
}

func SourceTooLarge(limit int64) *Error {
	return New(CodeSourceTooLarge, http.StatusRequestEntityTooLarge,
		fmt.Sprintf("Source text exceeds the %d byte limit", limit))
}

func InternalError(cause error) *Error {
	return Wrap(CodeInternalError, http.StatusInternalServerError, "Internal server error", cause)
}
