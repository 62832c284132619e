// Package config loads the settings of the inputstate host.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← INPUTSTATE_TICK_RATE, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← inputstate.toml / inputstate.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// Command line flags are applied by the caller after Load returns.
//
// # File Format
//
// The format is chosen by extension. TOML:
//
//	tick_rate = "16ms"
//	release_delay = "550ms"
//	log_level = "debug"
//	quit_keys = ["ctrl+c", "esc"]
//
// YAML uses the same keys. Unknown keys are rejected.
package config
