// Package loginwidget verifies the signed field sets a login widget passes
// back to an application after the user authorizes.
//
// An Authenticator is built once per bot token. The token is hashed with
// SHA-256 and the digest is kept as the HMAC-SHA256 key for every check:
//
//	a, err := loginwidget.New(token)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	fields, err := loginwidget.FieldsFromValues(r.URL.Query())
//	if err != nil {
//	    return err
//	}
//	res, err := a.CheckAuthorization(fields)
//	if err != nil {
//	    return err
//	}
//	if res != loginwidget.Valid {
//	    // reject the login attempt
//	}
//
// # Check order
//
// CheckAuthorization reports the first failing check in this order:
//
//  1. fewer than three fields, or id, auth_date or hash missing: MissingFields
//  2. hash is not 64 characters long: InvalidHash
//  3. auth_date is not a base-10 64-bit integer: InvalidAuthDateFormat
//  4. auth_date is further than AllowedTimeOffset from now, in either
//     direction: TooOld
//  5. hash does not match the recomputed signature: InvalidHash
//
// Only Valid means the payload may be trusted. The other outcomes exist for
// diagnostics; callers should not branch on them beyond rejecting.
//
// # Data-check string
//
// The signed message is built from every field except hash, in byte-wise key
// order, skipping empty values, as name=value lines joined by '\n'. A field
// with an empty value therefore signs the same as a missing one.
package loginwidget
