package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Analysis
	ErrorCode_ANALYSIS_FAILED     ErrorCode = 2000
	ErrorCode_ANALYSIS_TEXT_EMPTY ErrorCode = 2001

	// Content generation
	ErrorCode_GENERATION_FAILED       ErrorCode = 3000
	ErrorCode_IMAGE_GENERATION_FAILED ErrorCode = 3001

	// Publishing
	ErrorCode_PUBLISH_FAILED      ErrorCode = 4000
	ErrorCode_MEDIA_UPLOAD_FAILED ErrorCode = 4001
	ErrorCode_SHEETS_SYNC_FAILED  ErrorCode = 4002

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 5001
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 5002

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 6000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 6001
)

// String returns a human readable name for the code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_ALREADY_EXISTS:
		return "ALREADY_EXISTS"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_ANALYSIS_FAILED:
		return "ANALYSIS_FAILED"
	case ErrorCode_ANALYSIS_TEXT_EMPTY:
		return "ANALYSIS_TEXT_EMPTY"
	case ErrorCode_GENERATION_FAILED:
		return "GENERATION_FAILED"
	case ErrorCode_IMAGE_GENERATION_FAILED:
		return "IMAGE_GENERATION_FAILED"
	case ErrorCode_PUBLISH_FAILED:
		return "PUBLISH_FAILED"
	case ErrorCode_MEDIA_UPLOAD_FAILED:
		return "MEDIA_UPLOAD_FAILED"
	case ErrorCode_SHEETS_SYNC_FAILED:
		return "SHEETS_SYNC_FAILED"
	case ErrorCode_INTEGRATION_STORAGE_FAILED:
		return "INTEGRATION_STORAGE_FAILED"
	case ErrorCode_INTEGRATION_CACHE_FAILED:
		return "INTEGRATION_CACHE_FAILED"
	case ErrorCode_INTEGRATION_EXTERNAL_API_FAILED:
		return "INTEGRATION_EXTERNAL_API_FAILED"
	case ErrorCode_DB_CONNECTION_FAILED:
		return "DB_CONNECTION_FAILED"
	case ErrorCode_DB_QUERY_FAILED:
		return "DB_QUERY_FAILED"
	default:
		return "UNKNOWN"
	}
}
