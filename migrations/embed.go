// Package migrations embeds the SQL schema for the self-hosted sheet server.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
