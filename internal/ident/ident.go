// Package ident issues the short opaque IDs that key every stored record.
package ident

import "github.com/google/uuid"

// NewID returns an 8-character token truncated from a random UUID. IDs carry
// no ordering or meaning and are assigned once, at insert time.
func NewID() string {
	return uuid.NewString()[:8]
}
