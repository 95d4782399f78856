// Package api exposes the record store over HTTP.
//
// Routes:
//
//	GET    /api/health                 status and record count
//	GET    /api/rso                    all records, sorted by display name
//	POST   /api/rso                    create (full validation)
//	GET    /api/rso/{satcat}           one record
//	PUT    /api/rso/{satcat}           replace (full validation, key must match)
//	PATCH  /api/rso/{satcat}           merge validated fields over the stored record
//	DELETE /api/rso/{satcat}           remove
//	GET    /api/rso/almanac/catalog    the built-in seed catalog
//
// Failures are JSON objects with an "error" message; validation failures
// add a "fields" map of per-field messages. Store errors map to status
// codes: NOT_FOUND 404, DUPLICATE_KEY 409, INVALID_INPUT 400, anything else 500.
package api
