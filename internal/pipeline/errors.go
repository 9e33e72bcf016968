package pipeline

import "fmt"

// StructuralInputError is fatal: the page sequence itself is malformed and
// no partial work is performed.
type StructuralInputError struct {
	Reason string
}

func (e *StructuralInputError) Error() string {
	return fmt.Sprintf("structural input error: %s", e.Reason)
}

// ConfigurationError is fatal: the run options are out of range. Rejected
// before any page is processed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}
