package gemini

const (
	// DefaultAPIURL is the Gemini Generative Language API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-1.5-flash"
)
