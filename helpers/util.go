package helpers

import (
	"errors"
	"strings"
)

// GetSplitPart splits target by separate and returns the part at index,
// used to derive a listing id from its prefixed key.
func GetSplitPart(target string, separate string, index int) (string, error) {
	parts := strings.Split(target, separate)
	if index >= len(parts) {
		return "", errors.New("index out of range")
	}
	return parts[index], nil
}
