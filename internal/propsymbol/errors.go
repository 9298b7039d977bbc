package propsymbol

import "errors"

// Sentinel error kinds for this package. Callers match them with errors.Is.
var (
	ErrNoFeatures          = errors.New("feature collection has no features")
	ErrNoAttributes        = errors.New("first feature has no dew point attributes")
	ErrNoValues            = errors.New("no dew point values found")
	ErrNonPositiveBaseline = errors.New("baseline must be greater than zero")
	ErrIndexOutOfRange     = errors.New("sequence index out of range")
)
