package shoppinglist

import "strings"

// referenceMarker introduces the decorative recipe ID appended to a
// meal name when a plan slot is assigned, as in "Pancakes (ID: 42)".
const referenceMarker = "(ID:"

// ExtractMealName recovers the plain meal name from a stored slot value.
// The second return reports whether the slot holds a meal at all.
//
// Slot values written before accounts existed may contain the literal
// strings "None" or "null"; those and blank values count as empty. A
// value containing the ID marker is truncated at the marker and trimmed.
// Anything else is returned verbatim, so names that happen to contain
// parentheses or dashes survive untouched.
func ExtractMealName(value *string) (string, bool) {
	if value == nil {
		return "", false
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" || trimmed == "None" || trimmed == "null" {
		return "", false
	}

	if idx := strings.Index(trimmed, referenceMarker); idx >= 0 {
		name := strings.TrimSpace(trimmed[:idx])
		if name == "" {
			return "", false
		}
		return name, true
	}

	return trimmed, true
}
