package event

import "strings"

// Kind is a hierarchical event type tag using dot notation.
// Examples: "input.key.pressed", "collision.ray", "frame.rendered"
//
// Kinds form an explicit type hierarchy: "input.key.pressed" is a
// descendant of "input.key", which is a descendant of "input". Handlers
// declare the most general kind they accept and receive every descendant.
type Kind string

// Separator is the character used to separate kind segments.
const Separator = "."

// String returns the kind as a string.
func (k Kind) String() string {
	return string(k)
}

// Segments returns the kind split by the separator.
func (k Kind) Segments() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), Separator)
}

// Parent returns the parent kind by removing the last segment.
// Returns an empty kind if there is no parent.
//
// Example: "input.key.pressed" -> "input.key"
func (k Kind) Parent() Kind {
	s := string(k)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return ""
	}
	return Kind(s[:idx])
}

// Child returns a child kind by appending a segment.
//
// Example: Kind("input").Child("key") -> "input.key"
func (k Kind) Child(segment string) Kind {
	if k == "" {
		return Kind(segment)
	}
	return Kind(string(k) + Separator + segment)
}

// Base returns the last segment of the kind.
//
// Example: "input.key.pressed" -> "pressed"
func (k Kind) Base() string {
	s := string(k)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// Is reports whether k is the given kind or a descendant of it.
// Matching is on whole segments: Kind("inputx").Is("input") is false.
// The empty kind matches nothing and nothing matches the empty kind.
func (k Kind) Is(ancestor Kind) bool {
	if k == "" || ancestor == "" {
		return false
	}
	s := string(k)
	a := string(ancestor)
	if !strings.HasPrefix(s, a) {
		return false
	}
	if len(s) == len(a) {
		return true
	}
	return s[len(a)] == '.'
}

// IsValid reports whether the kind is well-formed.
// A valid kind:
//   - Is not empty
//   - Does not start or end with a separator
//   - Does not contain empty segments
func (k Kind) IsValid() bool {
	s := string(k)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, Separator) || strings.HasSuffix(s, Separator) {
		return false
	}
	return !strings.Contains(s, Separator+Separator)
}

// Join joins multiple segments into a kind.
func Join(segments ...string) Kind {
	return Kind(strings.Join(segments, Separator))
}
