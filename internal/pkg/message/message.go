package message

const (
	InvalidCredentials = "Email or password is wrong"
	InvalidInput       = "Invalid input."
	InvalidSession     = "Not authorized."
	EnvErrFmt          = "environment variable is not set: %s"

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
