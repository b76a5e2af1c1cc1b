package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for users and todos.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUID v7 string, falling back to v4 if the clock source
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s parses as a UUID. Identifiers that do not
// are treated as unknown by the store before any query is issued.
func IsValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
