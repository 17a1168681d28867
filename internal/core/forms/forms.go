// Package forms implements a small declarative validation rule set for
// user-submitted forms: each field carries a list of predicate+message pairs
// evaluated in order. Rules are decoupled from any HTTP binding so flows can
// fail fast before a network call is attempted.
package forms

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"
)

// Values holds the raw submitted fields of one form.
type Values map[string]string

// Predicate reports whether a field value is acceptable. It receives the
// whole form so cross-field checks (password confirmation) are possible.
type Predicate func(value string, all Values) bool

// Rule binds a predicate and its failure message to a field.
type Rule struct {
	Field     string
	Predicate Predicate
	Message   string
}

// Schema is an ordered list of rules for one form.
type Schema []Rule

// Validate evaluates every rule and returns the first failure per field.
// A nil return means the form passed.
func (s Schema) Validate(v Values) Errors {
	var errs Errors
	for _, r := range s.rules() {
		if _, seen := errs[r.Field]; seen {
			continue
		}
		if !r.Predicate(v[r.Field], v) {
			if errs == nil {
				errs = Errors{}
			}
			errs[r.Field] = r.Message
		}
	}
	return errs
}

func (s Schema) rules() []Rule { return s }

// Errors maps field names to their validation message. It implements error
// so services can return it through a plain error result.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// Required accepts any value with non-whitespace content.
func Required() Predicate {
	return func(value string, _ Values) bool {
		return strings.TrimSpace(value) != ""
	}
}

// Email accepts RFC-shaped addresses. Empty values are rejected; combine
// with Required for a friendlier "required" message on blank input.
func Email() Predicate {
	return func(value string, _ Values) bool {
		value = strings.TrimSpace(value)
		if value == "" {
			return false
		}
		_, err := mail.ParseAddress(value)
		return err == nil
	}
}

// MinLen accepts values of at least n characters. Counted in runes, not
// bytes, so non-ASCII input is measured the way users perceive it.
func MinLen(n int) Predicate {
	return func(value string, _ Values) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

// EqualTo accepts a value equal to another field's value. Attach the rule to
// the field that should carry the mismatch error (the confirmation field).
func EqualTo(other string) Predicate {
	return func(value string, all Values) bool {
		return value == all[other]
	}
}

// RequiredRule is shorthand for the most common rule shape.
func RequiredRule(field string) Rule {
	return Rule{Field: field, Predicate: Required(), Message: fmt.Sprintf("%s is required", field)}
}
