// Package rso defines the resident space object record and the rules that
// turn an untyped payload into a clean record fragment.
//
// Validate is pure: it reads a payload.Object and returns either the
// validated fields or per-field error messages. It never touches storage.
// Under partial validation only the fields present in the payload are
// checked and returned; callers merge them over the stored record with
// Fields.Apply.
//
// List-valued fields (aliases, tags) are normalized the same way wherever a
// record is built: entries are trimmed, empties dropped, duplicates removed
// case-insensitively (first spelling wins), and the result is sorted by its
// case-folded form.
package rso
