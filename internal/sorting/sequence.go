package sorting

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	MinValue = 1
	MaxValue = 99
	// PoolSize is the number of distinct values a sequence can draw from.
	PoolSize = MaxValue - MinValue + 1
)

// Generate samples size distinct values from [MinValue, MaxValue] in random order.
func Generate(rng *rand.Rand, size int) ([]int, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	perm := rng.Perm(PoolSize)[:size]
	values := make([]int, size)
	for i, p := range perm {
		values[i] = p + MinValue
	}
	return values, nil
}

func ValidateSize(size int) error {
	if size <= 0 || size > PoolSize {
		return fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidSize, size, PoolSize)
	}
	return nil
}

// ValidateValues checks an explicit sequence: a valid size, every value in
// [MinValue, MaxValue], no repeats.
func ValidateValues(values []int) error {
	if err := ValidateSize(len(values)); err != nil {
		return err
	}
	seen := make(map[int]bool, len(values))
	for i, v := range values {
		if v < MinValue || v > MaxValue {
			return fmt.Errorf("%w: %d at index %d (must be %d..%d)", ErrInvalidValues, v, i, MinValue, MaxValue)
		}
		if seen[v] {
			return fmt.Errorf("%w: %d repeated at index %d", ErrInvalidValues, v, i)
		}
		seen[v] = true
	}
	return nil
}

// ParseSize validates free text from a size field before it reaches a Stepper.
func ParseSize(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &InputError{Text: text, Wrapped: ErrInvalidInput}
	}
	size, err := strconv.Atoi(trimmed)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s (must be 1..%d)", ErrInvalidSize, trimmed, PoolSize)
	}
	if err != nil {
		return 0, &InputError{Text: text, Wrapped: ErrInvalidInput}
	}
	if err := ValidateSize(size); err != nil {
		return 0, err
	}
	return size, nil
}
