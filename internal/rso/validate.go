package rso

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/orbitr/internal/payload"
)

// Validation messages, one per failure kind.
const (
	MsgRequired       = "Field is required."
	MsgEmpty          = "Value cannot be empty."
	MsgNotString      = "Value must be a string."
	MsgNotArray       = "Value must be an array of strings."
	MsgNotStringEntry = "Every entry must be a string."
)

// FieldErrors maps a field name to a single human-readable message.
type FieldErrors map[string]string

// Error implements the error interface. Fields are listed in validation order.
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, name := range FieldNames {
		if msg, ok := e[name]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", name, msg))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields holds the values that passed validation. A nil pointer means the
// field was not part of the validated payload.
type Fields struct {
	DisplayName             *string
	SatcatNumber            *string
	InternationalDesignator *string
	TLE                     *string
	Aliases                 *[]string
	Tags                    *[]string
}

// Has reports whether the named field was validated.
func (f Fields) Has(field string) bool {
	switch field {
	case FieldDisplayName:
		return f.DisplayName != nil
	case FieldSatcatNumber:
		return f.SatcatNumber != nil
	case FieldInternationalDesignator:
		return f.InternationalDesignator != nil
	case FieldTLE:
		return f.TLE != nil
	case FieldAliases:
		return f.Aliases != nil
	case FieldTags:
		return f.Tags != nil
	}
	return false
}

// Map returns the validated fields keyed by JSON name.
func (f Fields) Map() map[string]any {
	m := make(map[string]any)
	if f.DisplayName != nil {
		m[FieldDisplayName] = *f.DisplayName
	}
	if f.SatcatNumber != nil {
		m[FieldSatcatNumber] = *f.SatcatNumber
	}
	if f.InternationalDesignator != nil {
		m[FieldInternationalDesignator] = *f.InternationalDesignator
	}
	if f.TLE != nil {
		m[FieldTLE] = *f.TLE
	}
	if f.Aliases != nil {
		m[FieldAliases] = *f.Aliases
	}
	if f.Tags != nil {
		m[FieldTags] = *f.Tags
	}
	return m
}

// Record builds a complete record. Every field must be present; missing ones
// are reported as required.
func (f Fields) Record() (Record, error) {
	errs := FieldErrors{}
	for _, name := range FieldNames {
		if !f.Has(name) {
			errs[name] = MsgRequired
		}
	}
	if len(errs) > 0 {
		return Record{}, errs
	}
	return f.Apply(Record{}), nil
}

// Apply returns a normalized copy of base with every validated field overwritten.
func (f Fields) Apply(base Record) Record {
	out := base
	if f.DisplayName != nil {
		out.DisplayName = *f.DisplayName
	}
	if f.SatcatNumber != nil {
		out.SatcatNumber = *f.SatcatNumber
	}
	if f.InternationalDesignator != nil {
		out.InternationalDesignator = *f.InternationalDesignator
	}
	if f.TLE != nil {
		out.TLE = *f.TLE
	}
	if f.Aliases != nil {
		out.Aliases = *f.Aliases
	}
	if f.Tags != nil {
		out.Tags = *f.Tags
	}
	return out.Normalized()
}

// Validate checks a payload against the record rules.
//
// With partial=false every field is required and all problems are collected.
// With partial=true absent fields are skipped. The returned Fields only hold
// fields that were validated in this call. The error map is nil when the
// payload is valid.
func Validate(p payload.Object, partial bool) (Fields, FieldErrors) {
	var f Fields
	errs := FieldErrors{}

	for _, name := range FieldNames {
		value, ok := p.Lookup(name)
		if !ok {
			if !partial {
				errs[name] = MsgRequired
			}
			continue
		}

		switch name {
		case FieldAliases, FieldTags:
			list, msg := cleanList(value)
			if msg != "" {
				errs[name] = msg
				continue
			}
			if name == FieldAliases {
				f.Aliases = &list
			} else {
				f.Tags = &list
			}
		default:
			s, msg := cleanString(value)
			if msg != "" {
				errs[name] = msg
				continue
			}
			switch name {
			case FieldDisplayName:
				f.DisplayName = &s
			case FieldSatcatNumber:
				f.SatcatNumber = &s
			case FieldInternationalDesignator:
				f.InternationalDesignator = &s
			case FieldTLE:
				f.TLE = &s
			}
		}
	}

	if len(errs) == 0 {
		return f, nil
	}
	return f, errs
}

// cleanString coerces a string or integer scalar of any size to a trimmed string.
func cleanString(v payload.Value) (string, string) {
	var s string
	switch val := v.(type) {
	case payload.String:
		s = string(val)
	case payload.Int:
		s = strconv.FormatInt(int64(val), 10)
	case payload.Number:
		if !val.IsInteger() {
			return "", MsgNotString
		}
		s = string(val)
	default:
		return "", MsgNotString
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", MsgEmpty
	}
	return s, ""
}

// cleanList accepts an array of strings and normalizes it. A single
// non-string entry rejects the whole field.
func cleanList(v payload.Value) ([]string, string) {
	arr, ok := v.(payload.Array)
	if !ok {
		return nil, MsgNotArray
	}
	items := make([]string, 0, len(arr))
	for _, elem := range arr {
		s, ok := elem.(payload.String)
		if !ok {
			return nil, MsgNotStringEntry
		}
		items = append(items, string(s))
	}
	return NormalizeList(items), ""
}
