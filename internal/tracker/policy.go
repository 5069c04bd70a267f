package tracker

import (
	"fmt"
	"strings"
)

// DuplicatePolicy controls marking a task urgent while it is already urgent.
type DuplicatePolicy string

const (
	// DuplicatesAllow pushes the id again. The task stays urgent until the
	// first of its entries is popped; later entries then point at a task
	// that is no longer urgent.
	DuplicatesAllow DuplicatePolicy = "allow"
	// DuplicatesReject refuses to mark an urgent task again.
	DuplicatesReject DuplicatePolicy = "reject"
)

// UnmarshalText implements encoding.TextUnmarshaler for config decoding.
func (p *DuplicatePolicy) UnmarshalText(text []byte) error {
	v := DuplicatePolicy(strings.ToLower(strings.TrimSpace(string(text))))
	switch v {
	case DuplicatesAllow, DuplicatesReject:
		*p = v
		return nil
	case "":
		*p = DuplicatesAllow
		return nil
	default:
		return fmt.Errorf("unknown duplicate policy %q", string(text))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p DuplicatePolicy) MarshalText() ([]byte, error) {
	return []byte(p), nil
}
