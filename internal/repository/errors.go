// Package repository defines sentinel errors reused across repositories.
// These values let handlers distinguish failure scenarios without parsing
// driver messages: ErrEmailExists maps to a user-facing "already
// registered" response, ErrNotFound to a 404.
package repository

import "errors"

// ErrEmailExists is returned when an insert hits the unique email
// constraint on customers.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")
