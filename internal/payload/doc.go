// Package payload models untyped request bodies as a sealed sum type.
//
// Incoming JSON is decoded field-by-field into Value variants before any
// validation runs, so nothing downstream assumes a static shape:
//   - String: JSON string
//   - Int: JSON integer that fits in int64
//   - Number: any other JSON number (fractions, exponents, out-of-range integers)
//   - Bool, Null: JSON literals
//   - Array, Object: containers of Values
//
// A field that is absent from an Object is distinct from a field that is
// present with a Null value; Object.Lookup reports the difference.
package payload
