package export

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError rejects an (activity type, format) pair that has no
// renderer. User-correctable: Allowed lists the types the format accepts.
type UnsupportedFormatError struct {
	ActivityType ActivityType
	Format       Format
	Allowed      []ActivityType
}

func (e *UnsupportedFormatError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("activity type %q cannot be exported to %q", e.ActivityType, e.Format)
	}
	names := make([]string, len(e.Allowed))
	for i, t := range e.Allowed {
		names[i] = string(t)
	}
	return fmt.Sprintf("activity type %q cannot be exported to %s (allowed: %s)",
		e.ActivityType, e.Format, strings.Join(names, ", "))
}

// ResourceLimitError rejects a payload whose size would make rendering
// unbounded. Detected after normalization, before any rendering work.
type ResourceLimitError struct {
	Kind   string // what exceeded the bound: "grid cells", "slides", ...
	Limit  int
	Actual int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("content exceeds %s limit: %d > %d", e.Kind, e.Actual, e.Limit)
}

// RenderError reports an unexpected fault during document assembly. It
// carries the (type, format) pair so the failure can be reproduced; it is
// surfaced to the caller, never retried.
type RenderError struct {
	ActivityType ActivityType
	Format       Format
	Err          error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("[%s.%s] render failed: %v", e.ActivityType, e.Format, e.Err)
}

// Unwrap returns the original error, supporting errors.Is/errors.As chains.
func (e *RenderError) Unwrap() error {
	return e.Err
}
