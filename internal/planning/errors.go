package planning

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation indicates the planning input was rejected before calculating.
	ErrValidation = errors.New("validation failed")

	// ErrDivisionByZero indicates a process has zero throughput or zero available minutes.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrMissingProductivityProfile indicates a catalog process has no productivity profile.
	ErrMissingProductivityProfile = errors.New("missing productivity profile")

	// ErrInvalidProductivityProfile indicates a stored profile outside its valid domain.
	ErrInvalidProductivityProfile = errors.New("invalid productivity profile")
)

// FieldErrorKind classifies a single input violation.
type FieldErrorKind string

const (
	MissingField FieldErrorKind = "missing_field"
	InvalidValue FieldErrorKind = "invalid_value"
)

// FieldError is one violated input constraint.
type FieldError struct {
	Field  string         `json:"field"`
	Kind   FieldErrorKind `json:"kind"`
	Reason string         `json:"reason,omitempty"`
}

func (e FieldError) String() string {
	if e.Kind == MissingField {
		return fmt.Sprintf("missing field %s", e.Field)
	}
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}

// ValidationError enumerates every violated constraint of one input.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) missing(field string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Kind: MissingField})
}

func (e *ValidationError) invalid(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Kind: InvalidValue, Reason: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ComputationCode names the kind of per-process failure.
type ComputationCode string

const (
	CodeDivisionByZero             ComputationCode = "division_by_zero"
	CodeMissingProductivityProfile ComputationCode = "missing_productivity_profile"
	CodeInvalidProductivityProfile ComputationCode = "invalid_productivity_profile"
)

// ComputationError is reported for one process; the rest of the batch still computes.
type ComputationError struct {
	ProcessID   string          `json:"processId"`
	ProcessName string          `json:"processName,omitempty"`
	Code        ComputationCode `json:"code"`
	Reason      string          `json:"reason"`
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("process %s: %s: %s", e.ProcessID, e.Code, e.Reason)
}

func (e *ComputationError) Unwrap() error {
	switch e.Code {
	case CodeDivisionByZero:
		return ErrDivisionByZero
	case CodeMissingProductivityProfile:
		return ErrMissingProductivityProfile
	case CodeInvalidProductivityProfile:
		return ErrInvalidProductivityProfile
	}
	return nil
}

func divisionByZero(processID, reason string) *ComputationError {
	return &ComputationError{ProcessID: processID, Code: CodeDivisionByZero, Reason: reason}
}

// FormatIssues renders issues as "<processId>:<code>" joined by commas.
func FormatIssues(issues []*ComputationError) string {
	parts := make([]string, 0, len(issues))
	for _, is := range issues {
		parts = append(parts, is.ProcessID+":"+string(is.Code))
	}
	return strings.Join(parts, ",")
}
