package cities

import (
	"fmt"
	"strings"
	"time"
)

// DefaultKey is the key of the service's primary city.
const DefaultKey = "lhospitalet"

type CityEntry struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	// Aliases are extra keys that resolve to this entry.
	Aliases []string `json:"aliases,omitempty"`
}

// NotFoundError is returned by Resolve when no city matches the key.
type NotFoundError struct {
	Key       string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.Key)
}

type Registry struct {
	entries    []CityEntry
	index      map[string]int
	defaultKey string
}

func NewRegistry(defaultKey string, entries []CityEntry) (*Registry, error) {
	r := &Registry{
		entries:    make([]CityEntry, 0, len(entries)),
		index:      make(map[string]int, len(entries)),
		defaultKey: Normalize(defaultKey),
	}

	for _, entry := range entries {
		if err := validate(entry); err != nil {
			return nil, err
		}

		pos := len(r.entries)
		keys := append([]string{entry.Key}, entry.Aliases...)
		for _, key := range keys {
			normalized := Normalize(key)
			if normalized == "" {
				return nil, fmt.Errorf("city %q: empty key", entry.DisplayName)
			}
			if _, exists := r.index[normalized]; exists {
				return nil, fmt.Errorf("city %q: duplicate key %q", entry.DisplayName, normalized)
			}
			r.index[normalized] = pos
		}

		entry.Key = Normalize(entry.Key)
		entry.Aliases = append([]string(nil), entry.Aliases...)
		r.entries = append(r.entries, entry)
	}

	if _, ok := r.index[r.defaultKey]; !ok {
		return nil, fmt.Errorf("default city %q is not registered", defaultKey)
	}

	return r, nil
}

func MustNewRegistry(defaultKey string, entries []CityEntry) *Registry {
	r, err := NewRegistry(defaultKey, entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Normalize trims surrounding whitespace and lowercases key.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Resolve looks key up by exact match after normalization.
func (r *Registry) Resolve(key string) (CityEntry, error) {
	normalized := Normalize(key)

	pos, ok := r.index[normalized]
	if !ok {
		return CityEntry{}, &NotFoundError{
			Key:       normalized,
			Available: r.DisplayNames(),
		}
	}

	return r.entries[pos], nil
}

func (r *Registry) Default() CityEntry {
	return r.entries[r.index[r.defaultKey]]
}

func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

// Entries returns the registered cities in registration order.
func (r *Registry) Entries() []CityEntry {
	out := make([]CityEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) DisplayNames() []string {
	names := make([]string, len(r.entries))
	for i, entry := range r.entries {
		names[i] = entry.DisplayName
	}
	return names
}

func validate(entry CityEntry) error {
	if strings.TrimSpace(entry.DisplayName) == "" {
		return fmt.Errorf("city %q: empty display name", entry.Key)
	}
	if entry.Latitude < -90 || entry.Latitude > 90 {
		return fmt.Errorf("city %q: latitude %v out of range", entry.Key, entry.Latitude)
	}
	if entry.Longitude < -180 || entry.Longitude > 180 {
		return fmt.Errorf("city %q: longitude %v out of range", entry.Key, entry.Longitude)
	}
	if _, err := time.LoadLocation(entry.Timezone); err != nil || entry.Timezone == "" {
		return fmt.Errorf("city %q: invalid timezone %q", entry.Key, entry.Timezone)
	}
	return nil
}
