package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	CodeOK           ErrorCode = "OK"
	CodeUnknown      ErrorCode = "COMMON_000"
	CodeInternal     ErrorCode = "COMMON_001"
	CodeInvalidParam ErrorCode = "COMMON_002"
	CodeNotFound     ErrorCode = "COMMON_003"
)

// Dataset error codes.  These correspond one-to-one to the failure modes a
// reference-table source can exhibit: the file is missing, the file parses to
// zero rows, the file cannot be parsed at all, or a required column is absent.
// Each must stay distinct so callers can react to the exact condition.
const (
	CodeDatasetNotFound      ErrorCode = "DS_001"
	CodeDatasetEmpty         ErrorCode = "DS_002"
	CodeDatasetMalformed     ErrorCode = "DS_003"
	CodeDatasetMissingColumn ErrorCode = "DS_004"
)

// errorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var errorCodeHTTPStatus = map[ErrorCode]int{
	CodeInternal:     http.StatusInternalServerError,
	CodeInvalidParam: http.StatusBadRequest,
	CodeNotFound:     http.StatusNotFound,

	// A missing or broken dataset makes the service unable to answer, but the
	// request itself was well-formed, hence 500-range rather than 400-range.
	CodeDatasetNotFound:      http.StatusInternalServerError,
	CodeDatasetEmpty:         http.StatusInternalServerError,
	CodeDatasetMalformed:     http.StatusInternalServerError,
	CodeDatasetMissingColumn: http.StatusInternalServerError,
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
