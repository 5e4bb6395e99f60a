// Package validate implements a small data-driven field validator.  A
// handler declares an ordered rule table (field name plus its checks) and
// runs incoming payload values through it; every violated check yields one
// human-readable message, in declaration order.  The table replaces the
// per-route validation middleware chains of a typical web framework with
// one uniform evaluation.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
)

// Check inspects a single field value and returns a message when the
// value violates the check, or "" when it passes.
type Check func(value string) string

// Rule binds a payload field to its ordered list of checks.
type Rule struct {
	Field  string
	Checks []Check
}

// Required fails on values that are empty after trimming whitespace.
func Required(field string) Check {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return fmt.Sprintf("Please provide a value for %q", field)
		}
		return ""
	}
}

// Email fails on values that do not parse as a bare email address.
func Email() Check {
	return func(v string) string {
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return "Please provide a valid email address"
		}
		return ""
	}
}

// MinLength fails on values shorter than n characters.
func MinLength(field string, n int) Check {
	return func(v string) string {
		if len(v) < n {
			return fmt.Sprintf("%q must be at least %d characters", field, n)
		}
		return ""
	}
}

// Run evaluates values against rules and returns all violation messages
// in rule-declaration order.  A nil or empty result means the payload is
// valid.  Run never mutates values; trimming is the store's concern.
func Run(values map[string]string, rules []Rule) []string {
	var msgs []string
	for _, r := range rules {
		v := values[r.Field]
		for _, check := range r.Checks {
			if msg := check(v); msg != "" {
				msgs = append(msgs, msg)
			}
		}
	}
	return msgs
}
