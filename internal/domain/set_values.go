package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coercion helpers backing the per-entity SetValues methods. Values arrive
// from decoded JSON payloads, so numbers are float64 and IDs are strings.
// A failed coercion leaves the target untouched and reports false, which
// SetValues treats the same as an unknown key.

func asString(value any, target *string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	*target = s
	return true
}

func asBool(value any, target *bool) bool {
	b, ok := value.(bool)
	if !ok {
		return false
	}
	*target = b
	return true
}

func asInt(value any, target *int) bool {
	switch n := value.(type) {
	case float64:
		*target = int(n)
		return true
	case int:
		*target = n
		return true
	default:
		return false
	}
}

func asUUID(value any, target *uuid.UUID) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	*target = id
	return true
}

// asOptionalUUID accepts a UUID string or explicit null. Null clears the
// reference.
func asOptionalUUID(value any, target **uuid.UUID) bool {
	if value == nil {
		*target = nil
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	*target = &id
	return true
}

func asUUIDSlice(value any, target *[]uuid.UUID) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return false
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return false
		}
		ids = append(ids, id)
	}
	*target = ids
	return true
}

// asOptionalTime accepts an RFC 3339 timestamp string or explicit null.
func asOptionalTime(value any, target **time.Time) bool {
	if value == nil {
		*target = nil
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return false
	}
	*target = &t
	return true
}
