package response

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "internal server error"

	InternalServerErrorCode = 500
)

// Formats used by the Date/DateTime JSON marshalers.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
