// Package store is the query layer between the HTTP handlers and the
// relational store. It validates caller-supplied identifiers against the
// reference data, builds the parameterized queries, and shapes rows for
// the API (including the per-read comment_count aggregate).
package store

import (
	"gorm.io/gorm"
)

type Store struct {
	db   *gorm.DB
	refs *RefData
}

func New(gdb *gorm.DB) *Store {
	return &Store{
		db:   gdb,
		refs: NewRefData(gdb),
	}
}

// Refs exposes the reference-data provider, mainly for tests and for
// callers that need to invalidate after out-of-band writes.
func (s *Store) Refs() *RefData {
	return s.refs
}
