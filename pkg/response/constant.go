package response

const (
	// MessageSuccess is the message of every successful envelope.
	MessageSuccess = "Success"
	// DefaultErrorMessage is the client-visible message for unexpected
	// errors. Internal detail stays in the logs.
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode = 400
	ValidationErrorMsg  = "Validation error"

	InternalServerErrorCode = 500
)
