package api

// Routes
const (
	pathIndex        = "/"
	pathHealth       = "/api/health"
	pathAvailability = "/api/availability"
	pathBook         = "/api/book"
	pathTest         = "/api/test"
)

// Availability query parameters. Both are optional.
const (
	paramStartDate = "start_date"
	paramEndDate   = "end_date"
)

// Booking request bodies are small JSON objects.
const maxBookingBodyBytes = int64(65536)

// publicEndpoints is what the index route advertises.
var publicEndpoints = []string{
	pathAvailability,
	pathBook,
	pathHealth,
	pathTest,
}
