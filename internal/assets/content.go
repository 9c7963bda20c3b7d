// Package assets provides the content snapshots shipped with the application.
package assets

import "embed"

// Content contains the install-time content snapshot for each supported level.
//
//go:embed content/*.json
var Content embed.FS
