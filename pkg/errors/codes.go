package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeNotImplemented     ErrorCode = "COMMON_015"

	// CodeUnknown marks an error whose classification could not be determined.
	CodeUnknown ErrorCode = "UNKNOWN"
	// CodeOK is returned by GetCode for a nil error.
	CodeOK ErrorCode = "OK"
)

// Screening module error codes
const (
	ErrCodeEntityNotFound          ErrorCode = "SCR_001"
	ErrCodeEntityIDInvalid         ErrorCode = "SCR_002"
	ErrCodeProfileFetchFailed      ErrorCode = "SCR_003"
	ErrCodeAssessmentFailed        ErrorCode = "SCR_004"
	ErrCodeAssessmentPublishFailed ErrorCode = "SCR_005"
)

// Reference-data module error codes
const (
	ErrCodeReferenceDataInvalid    ErrorCode = "REF_001"
	ErrCodeReferenceTierGap        ErrorCode = "REF_002"
	ErrCodeReferenceWeightsInvalid ErrorCode = "REF_003"
)

// httpStatusByCode maps every known ErrorCode to the HTTP status the API
// layer should respond with. Codes absent from the map fall back to 500.
var httpStatusByCode = map[ErrorCode]int{
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeEntityIDInvalid:    http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeEntityNotFound:     http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeNotImplemented:     http.StatusNotImplemented,
}

// HTTPStatus returns the HTTP status code associated with c.
func (c ErrorCode) HTTPStatus() int {
	if status, ok := httpStatusByCode[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}
