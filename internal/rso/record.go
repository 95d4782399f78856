package rso

import (
	"slices"
	"strings"
)

// JSON field names of a record.
const (
	FieldDisplayName             = "display_name"
	FieldSatcatNumber            = "satcat_number"
	FieldInternationalDesignator = "international_designator"
	FieldTLE                     = "tle"
	FieldAliases                 = "aliases"
	FieldTags                    = "tags"
)

// FieldNames lists every record field in validation order.
var FieldNames = []string{
	FieldDisplayName,
	FieldSatcatNumber,
	FieldInternationalDesignator,
	FieldTLE,
	FieldAliases,
	FieldTags,
}

// Record is one tracked object. SatcatNumber is the unique key.
//
// Fields are declared in JSON key order so the encoded form has sorted keys.
type Record struct {
	Aliases                 []string `json:"aliases"`
	DisplayName             string   `json:"display_name"`
	InternationalDesignator string   `json:"international_designator"`
	SatcatNumber            string   `json:"satcat_number"`
	Tags                    []string `json:"tags"`
	TLE                     string   `json:"tle"`
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := r
	out.Aliases = slices.Clone(r.Aliases)
	out.Tags = slices.Clone(r.Tags)
	return out
}

// Normalized returns a deep copy of r with string fields trimmed and
// aliases and tags normalized. Both lists are always non-nil so they encode
// as [] rather than null.
func (r Record) Normalized() Record {
	out := r
	out.DisplayName = strings.TrimSpace(r.DisplayName)
	out.SatcatNumber = strings.TrimSpace(r.SatcatNumber)
	out.InternationalDesignator = strings.TrimSpace(r.InternationalDesignator)
	out.TLE = strings.TrimSpace(r.TLE)
	out.Aliases = NormalizeList(r.Aliases)
	out.Tags = NormalizeList(r.Tags)
	return out
}
