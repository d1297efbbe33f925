// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wxpack/internal/adapters/config"
	_ "go.trai.ch/wxpack/internal/adapters/envfile"
	_ "go.trai.ch/wxpack/internal/adapters/fs"
	_ "go.trai.ch/wxpack/internal/adapters/logger"
	_ "go.trai.ch/wxpack/internal/adapters/manifest"
	_ "go.trai.ch/wxpack/internal/adapters/snapshot"
	// Register app nodes.
	_ "go.trai.ch/wxpack/internal/app"
)
