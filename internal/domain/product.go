package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product is the tracked status record for a single product code.
type Product struct {
	Code      string    `json:"code"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MaxCodeLength is the longest accepted code in bytes. Fully path-escaped it
// still fits a QR status link at medium error correction.
const MaxCodeLength = 256

// ValidateCode rejects empty, whitespace-only and over-long codes. The code
// itself is never trimmed or case folded.
func ValidateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: product code is required", ErrInvalidInput)
	}
	if len(code) > MaxCodeLength {
		return fmt.Errorf("%w: product code is %d bytes, at most %d allowed", ErrInvalidInput, len(code), MaxCodeLength)
	}
	return nil
}
