// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nudge/internal/adapters/config"
	_ "go.trai.ch/nudge/internal/adapters/logger"
	_ "go.trai.ch/nudge/internal/adapters/notifyfile"
	_ "go.trai.ch/nudge/internal/adapters/sysclock"
	// Register app and engine nodes.
	_ "go.trai.ch/nudge/internal/app"
	_ "go.trai.ch/nudge/internal/engine/reconciler"
)
