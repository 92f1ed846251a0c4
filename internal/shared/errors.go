package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Server communication errors
	ErrServerUnreachable = fmt.Errorf("radio server unreachable")
	ErrAPIRequest        = fmt.Errorf("API request failed")
	ErrMalformedResponse = fmt.Errorf("malformed server response")
	ErrTimeout           = fmt.Errorf("operation timed out")

	// Domain errors
	ErrStationNotFound = fmt.Errorf("station not found")
	ErrNoStations      = fmt.Errorf("no stations available")
	ErrEmptyCache      = fmt.Errorf("station cache is empty")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
