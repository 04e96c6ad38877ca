package scraper

import (
	"strings"

	"sjsage522/kijijiworker/pkg/errors"
)

// maxSearchDepth bounds the recursion so a hostile or degenerate page
// cannot blow the stack.
const maxSearchDepth = 512

// FindListings walks a decoded JSON tree depth-first and collects every
// mapping reachable under a key starting with prefix, keyed by that key.
// A matched value is a leaf of the search: the walk never descends into
// it, even if it contains further matching keys. Sequences are unwrapped
// elementwise and never match directly. On a duplicate key the last
// occurrence wins.
func FindListings(tree any, prefix string) (map[string]map[string]any, error) {
	matches := make(map[string]map[string]any)
	if err := findListings(tree, prefix, 0, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func findListings(node any, prefix string, depth int, matches map[string]map[string]any) error {
	if depth > maxSearchDepth {
		return errors.NewParse("search", "embedded JSON tree exceeds maximum nesting depth", nil)
	}

	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if strings.HasPrefix(key, prefix) {
				if record, ok := child.(map[string]any); ok {
					matches[key] = record
				}
				continue
			}
			if err := findListings(child, prefix, depth+1, matches); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range v {
			if err := findListings(item, prefix, depth+1, matches); err != nil {
				return err
			}
		}
	}

	return nil
}
