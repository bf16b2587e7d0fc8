package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when a request carries no valid session.
	ErrUnauthenticated = errors.New("unauthorized")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden is returned when a resource belongs to another user.
	ErrForbidden = errors.New("forbidden")

	// ErrMissingCredentials is returned when registration lacks email or password.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrPasswordTooShort is returned when a registration password is under the minimum.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrUserAlreadyExists is returned when trying to register an existing email.
	ErrUserAlreadyExists = errors.New("user already exists with this email")
	// ErrMissingEmail is returned when an OAuth profile carries no email.
	ErrMissingEmail = errors.New("provider profile has no email")

	// ErrProjectNameRequired is returned when a project name is blank.
	ErrProjectNameRequired = errors.New("project name is required")
	// ErrProjectNameTooLong is returned when a project name exceeds the column size.
	ErrProjectNameTooLong = errors.New("project name must be at most 255 characters")
	// ErrProjectNotFound is returned when a project does not exist or is not owned by the requester.
	ErrProjectNotFound = errors.New("project not found")
	// ErrKeyGenerationExhausted is returned when every project key attempt collided.
	ErrKeyGenerationExhausted = errors.New("failed to generate unique project key")

	// ErrMissingFeedbackFields is returned when ingestion lacks a required field.
	ErrMissingFeedbackFields = errors.New("missing required fields: projectKey, type, message")
	// ErrInvalidFeedbackType is returned when the type is outside the accepted set.
	ErrInvalidFeedbackType = errors.New("invalid feedback type, must be: bug, feature, or other")
	// ErrMessageTooLong is returned when a feedback message exceeds 1000 characters.
	ErrMessageTooLong = errors.New("message must be at most 1000 characters")
	// ErrContactTooLong is returned when userName or userEmail exceeds 255 characters.
	ErrContactTooLong = errors.New("userName and userEmail must be at most 255 characters")
	// ErrInvalidProjectKey is returned when a projectKey matches no project.
	ErrInvalidProjectKey = errors.New("invalid project key")
	// ErrFeedbackNotFound is returned when a feedback id does not resolve.
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrLabelRequired is returned when a label is blank.
	ErrLabelRequired = errors.New("label is required")
	// ErrInvalidLabel is returned when a trimmed label is outside 2..50 characters.
	ErrInvalidLabel = errors.New("label must be between 2 and 50 characters")
	// ErrLabelNotFound is returned when a label does not resolve under the given feedback.
	ErrLabelNotFound = errors.New("label not found")

	// ErrRateLimited is returned when a client exceeds the ingestion rate.
	ErrRateLimited = errors.New("too many requests, please try again later")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var mappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHORIZED"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{ErrMissingCredentials, http.StatusBadRequest, "MISSING_CREDENTIALS"},
	{ErrPasswordTooShort, http.StatusBadRequest, "PASSWORD_TOO_SHORT"},
	{ErrUserAlreadyExists, http.StatusBadRequest, "USER_ALREADY_EXISTS"},
	{ErrProjectNameRequired, http.StatusBadRequest, "PROJECT_NAME_REQUIRED"},
	{ErrProjectNameTooLong, http.StatusBadRequest, "PROJECT_NAME_TOO_LONG"},
	{ErrProjectNotFound, http.StatusNotFound, "PROJECT_NOT_FOUND"},
	{ErrMissingFeedbackFields, http.StatusBadRequest, "MISSING_FIELDS"},
	{ErrInvalidFeedbackType, http.StatusBadRequest, "INVALID_FEEDBACK_TYPE"},
	{ErrMessageTooLong, http.StatusBadRequest, "MESSAGE_TOO_LONG"},
	{ErrContactTooLong, http.StatusBadRequest, "CONTACT_TOO_LONG"},
	{ErrInvalidProjectKey, http.StatusNotFound, "INVALID_PROJECT_KEY"},
	{ErrFeedbackNotFound, http.StatusNotFound, "FEEDBACK_NOT_FOUND"},
	{ErrLabelRequired, http.StatusBadRequest, "LABEL_REQUIRED"},
	{ErrInvalidLabel, http.StatusBadRequest, "INVALID_LABEL"},
	{ErrLabelNotFound, http.StatusNotFound, "LABEL_NOT_FOUND"},
	{ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
	// Key exhaustion is an internal failure but keeps its own message.
	{ErrKeyGenerationExhausted, http.StatusInternalServerError, "KEY_GENERATION_FAILED"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Anything unrecognised becomes a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}

// IsInternal reports whether err maps to a 500 and should be logged server-side.
func IsInternal(err error) bool {
	return MapErrorToHTTP(err).StatusCode == http.StatusInternalServerError
}
