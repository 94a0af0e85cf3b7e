package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientUserNotFound                  = "user not found"
	ErrClientInvalidImageFormat            = "the image format is not supported"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "url param %s validation failed"
	ErrDevImageValidationFailed      = "image validation failed"

	ErrDevAuthTokenMissing       = "authorization token is missing"
	ErrDevAuthTokenInvalid       = "authorization token is invalid"
	ErrDevAuthSigningMethod      = "unexpected JWT signing method"
	ErrDevInvalidAPIKey          = "INVALID_API_KEY"
	ErrDevAPIKeyRequired         = "API_KEY_REQUIRED"
	ErrDevTokenExchangeFailed    = "management token exchange failed with status %d: %s"
	ErrDevIdentityUpdateRejected = "identity provider rejected user update with status %d"
	ErrDevUserNotFoundForEmail   = "no local user found for email"
	ErrDevUserMissingPatientID   = "local user has no FHIR patient id"
	ErrDevCreateFHIRResource     = "failed to create FHIR %s"
	ErrDevPatchFHIRResource      = "failed to patch FHIR %s"
	ErrDevGetFHIRResource        = "failed to get FHIR %s"
	ErrDevDeleteFHIRResource     = "failed to delete FHIR %s"
	ErrDevDecodeFHIRResponse     = "failed to decode FHIR %s response"
	ErrDevFHIRUpstream           = "FHIR server returned status %d for %s: %s"

	ErrDevDBFailedToFindDocument    = "failed to find document in database"
	ErrDevDBFailedToInsertDocument  = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument  = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document in database"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents in database"
	ErrDevDBStringNotObjectID       = "string is not a valid ObjectID"

	ErrDevRedisFailedToSet    = "failed to set value in redis"
	ErrDevRedisFailedToGet    = "failed to get value from redis"
	ErrDevRedisFailedToDelete = "failed to delete value from redis"

	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	ErrDevEventPublishFailed = "failed to publish event to queue"
)
