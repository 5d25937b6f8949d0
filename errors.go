package sortlab

import (
	"fmt"
)

// RangeError reports malformed range bounds passed to SortRange.
type RangeError struct {
	// First is the requested start position
	First int
	// Last is the requested exclusive end position
	Last int
	// Len is the length of the underlying buffer
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d,%d) over buffer of length %d", e.First, e.Last, e.Len)
}

// ContractError represents a precondition violation detected by an algorithm
// or by contract testing, such as a negative radix key or a comparator that
// is not a strict weak ordering. It is a programmer error and is never retried.
type ContractError struct {
	// Algorithm names the routine or check that detected the violation
	Algorithm string
	// Reason describes the violated precondition
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Algorithm, e.Reason)
}

// NewContractError creates a ContractError with a formatted reason
func NewContractError(algorithm, format string, args ...interface{}) error {
	return &ContractError{Algorithm: algorithm, Reason: fmt.Sprintf(format, args...)}
}

// ComparisonError represents an error that occurred during item comparison
type ComparisonError struct {
	// Cause is the original panic or error that occurred during comparison
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// ResourceError reports that a routine could not obtain working storage or
// another resource. It is the only sort failure the Driver survives.
type ResourceError struct {
	// Resource names what ran out, such as "memory"
	Resource string
	// Context names the routine that needed it
	Context string
	// Err is the underlying failure
	Err error
}

func (e *ResourceError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("resource error (%s) in %s: %v", e.Resource, e.Context, e.Err)
	}
	return fmt.Sprintf("resource error (%s): %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a ResourceError wrapping the underlying error
func NewResourceError(err error, resource, context string) error {
	return &ResourceError{Resource: resource, Context: context, Err: err}
}

// NewSinkError wraps a failure reported by a result sink
func NewSinkError(err error, operation, scenario string) error {
	if scenario != "" {
		return fmt.Errorf("sink error during %s for %s: %w", operation, scenario, err)
	}
	return fmt.Errorf("sink error during %s: %w", operation, err)
}
