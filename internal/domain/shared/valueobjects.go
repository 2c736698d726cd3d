// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ═══════════════════════════════════════════════════════════════════════════
// UniqueEntityID Value Object
// ═══════════════════════════════════════════════════════════════════════════

// urnPrefix is the optional prefix accepted in front of a textual UUID.
const urnPrefix = "urn:uuid:"

// UniqueEntityID identifies an entity. It always holds a syntactically valid
// UUID and renders in canonical 8-4-4-4-12 lowercase form.
type UniqueEntityID struct {
	value uuid.UUID
}

// NewUniqueEntityID parses source when it is non-nil, otherwise it generates
// a fresh random (version 4) identity.
func NewUniqueEntityID(source *string) (UniqueEntityID, error) {
	if source == nil {
		return GenerateID(), nil
	}
	return ParseID(*source)
}

// GenerateID returns a fresh random identity.
func GenerateID() UniqueEntityID {
	return UniqueEntityID{value: uuid.New()}
}

// ParseID parses a textual identity. The canonical hyphenated form, the
// `urn:uuid:` prefixed form, the braced form and 32 bare hex digits are
// accepted; anything else yields an *IdentityFormatError.
func ParseID(s string) (UniqueEntityID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UniqueEntityID{}, diagnose(s, err)
	}
	return UniqueEntityID{value: u}, nil
}

// MustParseID is like ParseID but panics on malformed input.
// Intended for fixtures and constants only.
func MustParseID(s string) UniqueEntityID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// diagnose locates the first character that can never appear in a UUID so
// the caller gets a position to point at. When every character is legal the
// problem is the length or the hyphen layout, reported by the parser.
func diagnose(s string, parseErr error) *IdentityFormatError {
	body := s
	offset := 0
	if len(s) >= len(urnPrefix) && strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
		body = s[len(urnPrefix):]
		offset = len(urnPrefix)
	}

	// i is a byte offset, so Position counts bytes like the parser does.
	for i, r := range body {
		if isHexDigit(r) || r == '-' {
			continue
		}
		if (r == '{' && i == 0) || (r == '}' && i == len(body)-1) {
			continue
		}
		return &IdentityFormatError{
			Input:    s,
			Char:     r,
			Position: offset + i + 1,
			Reason:   "invalid character",
			Err:      parseErr,
		}
	}

	return &IdentityFormatError{
		Input:  s,
		Reason: parseErr.Error(),
		Err:    parseErr,
	}
}

func isHexDigit(r rune) bool {
	return r < unicode.MaxASCII && strings.ContainsRune("0123456789abcdefABCDEF", r)
}

// String returns the canonical textual form.
func (id UniqueEntityID) String() string {
	return id.value.String()
}

// Equals checks if two identities hold the same value.
func (id UniqueEntityID) Equals(other UniqueEntityID) bool {
	return id.value == other.value
}

// IsZero checks if the identity was never assigned.
func (id UniqueEntityID) IsZero() bool {
	return id.value == uuid.Nil
}

// Version returns the UUID version number (4 for generated identities).
func (id UniqueEntityID) Version() int {
	return int(id.value.Version())
}

// MarshalText implements encoding.TextMarshaler.
func (id UniqueEntityID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *UniqueEntityID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Name Value Object
// ═══════════════════════════════════════════════════════════════════════════

// MinNameLength is the length a name must exceed, counted in bytes.
const MinNameLength = 3

// ValidateName checks a raw entity name. No trimming is done: the raw length
// is what counts. The validated string is returned unchanged.
func ValidateName(raw string) (string, error) {
	if len(raw) <= MinNameLength {
		return "", NewValidationError("name", "Validate", MsgNameTooShort)
	}
	return raw, nil
}
