// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrJurisdictionNotFound lets the market detail handler return
// a 404 instead of a generic database error.
package repository

import "errors"

// ErrJurisdictionNotFound is returned when no covered jurisdiction exists
// for a slug. Handlers should translate this into an HTTP 404 response.
var ErrJurisdictionNotFound = errors.New("jurisdiction not found")
