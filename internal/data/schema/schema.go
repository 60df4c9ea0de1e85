// Package schema holds the database DDL applied at startup.
package schema

import _ "embed"

//go:embed schema.sql
var SQL string
