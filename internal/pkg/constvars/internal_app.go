package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "STCKW_SVC_"
)

const (
	RoleAdmin = "admin"
)

const (
	MongoCollectionUsers = "users"
)

const (
	// MedicationNameCacheKeyPrefix namespaces resolved display names in Redis.
	MedicationNameCacheKeyPrefix = "medication:name:"
)

const (
	StackEventStatementCreated = "stack.statement.created"
	StackEventStatementPatched = "stack.statement.patched"
)
