package errors

import (
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// maxTagLength bounds technology and performance tags.
const maxTagLength = 128

// ParseBudget parses a monthly budget in USD. The value must be a finite,
// non-negative decimal.
func ParseBudget(s string) (float64, error) {
	b, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, New(ErrCodeInvalidInput, "budget must be a decimal number: %q", s)
	}
	if err := ValidateBudget(b); err != nil {
		return 0, err
	}
	return b, nil
}

// ValidateBudget rejects negative, NaN and infinite budgets.
func ValidateBudget(b float64) error {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return New(ErrCodeInvalidInput, "budget must be a finite number")
	}
	if b < 0 {
		return New(ErrCodeInvalidInput, "budget must not be negative: %v", b)
	}
	return nil
}

// ValidateTag rejects tags with control characters or excessive length.
// Unknown tags are fine; they simply match no rule.
func ValidateTag(tag string) error {
	if len(tag) > maxTagLength {
		return New(ErrCodeInvalidInput, "tag too long (max %d characters)", maxTagLength)
	}
	for _, r := range tag {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "tag contains invalid control characters: %q", tag)
		}
	}
	return nil
}

// ValidateOutputDir checks that dir either does not exist yet or is a
// directory.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}
	if strings.ContainsRune(dir, '\x00') {
		return New(ErrCodeInvalidPath, "output directory contains invalid characters")
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "stat output directory %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "output path is not a directory: %s", dir)
	}
	return nil
}
