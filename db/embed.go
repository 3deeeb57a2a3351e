// Package db provides the embedded schema for the local favorites store.
package db

import _ "embed"

// Schema contains the DDL statements for the favorites table.
//
//go:embed migrations/001_favorites.sql
var Schema string
