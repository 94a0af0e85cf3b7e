package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingEmailKey        = "email"
	LoggingUserIDKey       = "user_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingStatementIDKey  = "statement_id"
	LoggingMedicationIDKey = "medication_id"
	LoggingReferenceKey    = "reference"
	LoggingCountKey        = "count"
	LoggingQueueKey        = "queue"
	LoggingEventKey        = "event"
)
