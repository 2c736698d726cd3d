// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Validation errors
	ErrValidation    = errors.New("entity validation error")
	ErrInvalidID     = errors.New("invalid ID")
	ErrInvalidFormat = errors.New("invalid format")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "member", "team", "identity"
	Op      string // Operation that failed, e.g., "Create", "Change"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the error kind for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	return e.Kind
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// NewValidationError creates an entity validation error. The message is the
// fixed rule text, e.g. "No members".
func NewValidationError(domain, op, message string) *DomainError {
	return NewDomainError(domain, op, ErrValidation, message)
}

// Validation rule messages.
const (
	MsgNameTooShort = "name must be more than 3 characters"
	MsgNoName       = "No name"
	MsgNoMembers    = "No members"
	MsgNoMember     = "No member"
	MsgUnknownRole  = "unknown role"

	MsgInvalidMember = "team member is not initialized"
)

// ═══════════════════════════════════════════════════════════════════════════
// Identity errors
// ═══════════════════════════════════════════════════════════════════════════

// IdentityFormatError is returned when a supplied identity string is not a
// canonical UUID. Char and Position (1-based) are set when a single offending
// character could be located; Position is 0 otherwise.
type IdentityFormatError struct {
	Input    string
	Char     rune
	Position int
	Reason   string
	Err      error // error reported by the uuid parser
}

// Error implements the error interface.
func (e *IdentityFormatError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("invalid character: expected an optional prefix of `urn:uuid:` followed by [0-9a-fA-F-], found `%c` at %d", e.Char, e.Position)
	}
	return fmt.Sprintf("invalid identity %q: %s", e.Input, e.Reason)
}

// Unwrap returns the parser error.
func (e *IdentityFormatError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidID and ErrInvalidFormat as matches.
func (e *IdentityFormatError) Is(target error) bool {
	return target == ErrInvalidID || target == ErrInvalidFormat
}

// IsValidation checks if the error is an entity validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidID checks if the error is an identity format error.
func IsInvalidID(err error) bool {
	return errors.Is(err, ErrInvalidID)
}

// ValidationMessage extracts the rule message from a validation error, or
// returns an empty string when err is not one.
func ValidationMessage(err error) string {
	var de *DomainError
	if errors.As(err, &de) && errors.Is(de.Kind, ErrValidation) {
		return de.Message
	}
	return ""
}
