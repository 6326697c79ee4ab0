// Package store translates application operations into queries against the
// relational store. All other failures are wrapped and bubble up as server
// errors.
package store

import "errors"

var (
	ErrDuplicateEmail  = errors.New("e-mail already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)
