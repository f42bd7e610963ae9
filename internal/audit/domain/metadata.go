package domain

import "strconv"

// Metadata is the string-only key/value payload stored with an event. Values are written and
// read through the typed helpers below so callers never format or parse them by hand.
type Metadata map[string]string

// NewMetadata returns an empty Metadata ready for chained setters.
func NewMetadata() Metadata {
	return Metadata{}
}

// Set stores value under key. Empty values are kept; readers treat them as absent references.
func (m Metadata) Set(key, value string) Metadata {
	m[key] = value
	return m
}

// SetInt stores v in base 10.
func (m Metadata) SetInt(key string, v int64) Metadata {
	m[key] = strconv.FormatInt(v, 10)
	return m
}

// SetBool stores v as "true" or "false".
func (m Metadata) SetBool(key string, v bool) Metadata {
	m[key] = strconv.FormatBool(v)
	return m
}

// Get returns the value for key, or "" when absent.
func (m Metadata) Get(key string) string {
	return m[key]
}

// Int parses the value for key. ok is false when the key is absent, empty, or not an integer.
func (m Metadata) Int(key string) (v int64, ok bool) {
	s, present := m[key]
	if !present || s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

// Bool parses the value for key. ok is false when the key is absent or not a boolean.
func (m Metadata) Bool(key string) (v bool, ok bool) {
	s, present := m[key]
	if !present {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	return v, err == nil
}

// Clone returns a copy of m; nil stays nil.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SetOptional stores value only when it is non-empty.
func (m Metadata) SetOptional(key, value string) Metadata {
	if value != "" {
		m[key] = value
	}
	return m
}
