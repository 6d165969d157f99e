// Package valid is the run-time support library for generated Validate
// methods: the error-collection container and the built-in checks.
package valid

import (
	"fmt"
	"sort"
	"strings"
)

// Params carries the parameters of a failed rule. Generated code always
// reports the offending run-time value under key "value".
type Params = map[string]any

// RuleError is one failed check on one field.
type RuleError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Params  Params `json:"params,omitempty"`
}

// Fail builds a RuleError.
func Fail(code, message string, params Params) RuleError {
	return RuleError{Code: code, Message: message, Params: params}
}

// FailErr builds a RuleError from a custom check's error. An explicit
// message override wins; otherwise the error text is used.
func FailErr(code, message string, err error, params Params) RuleError {
	if message == "" && err != nil {
		message = err.Error()
	}
	return RuleError{Code: code, Message: message, Params: params}
}

// Errors collects rule failures per field key, preserving the order
// checks ran in within each field.
type Errors map[string][]RuleError

// NewErrors creates an empty collection.
func NewErrors() Errors {
	return make(Errors)
}

// Add records a failure for a field.
func (e Errors) Add(field string, re RuleError) {
	e[field] = append(e[field], re)
}

// Merge folds a nested struct's validation result under the given field
// key: child keys become "field.child". A non-Errors error is recorded
// as a single nested failure.
func (e Errors) Merge(field string, err error) {
	if err == nil {
		return
	}
	nested, ok := err.(Errors)
	if !ok {
		e.Add(field, Fail("nested", err.Error(), nil))
		return
	}
	for key, res := range nested {
		e[field+"."+key] = append(e[field+"."+key], res...)
	}
}

// Field returns all failures recorded for a field.
func (e Errors) Field(field string) []RuleError {
	return e[field]
}

// Has reports whether a field has any failures.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether nothing failed.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// OrNil returns the collection as an error, or nil when empty. Generated
// Validate methods end with it.
func (e Errors) OrNil() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

// Error implements the error interface with a deterministic,
// human-readable summary.
func (e Errors) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		for _, re := range e[f] {
			if re.Message != "" {
				parts = append(parts, fmt.Sprintf("%s: %s", f, re.Message))
			} else {
				parts = append(parts, fmt.Sprintf("%s: %s", f, re.Code))
			}
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}
