package service

// ValidationObserver records the outcome of validations.
type ValidationObserver interface {
	ObserveValidation(outcome string, confidence int)
}

// ValidationServiceWrapper defines middleware composition for ValidationService.
// Implementations wrap an existing ValidationService to add behavior such as
// logging, input validation or metrics.
type ValidationServiceWrapper interface {
	Wrap(ValidationService) ValidationService // returns a decorated ValidationService applying additional behavior
}
