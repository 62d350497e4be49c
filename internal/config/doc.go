// Package config loads maxcolours settings from layered YAML files.
//
// Settings are resolved in this order, later layers overriding earlier ones:
//  1. Built-in defaults (GetDefaultConfig)
//  2. User configuration: ~/.config/maxcolours/config.yaml
//  3. Project configuration: ./.maxcolours/config.yaml
//
// A file given explicitly with --config replaces the user and project layers.
//
// # Example
//
//	defaults:
//	  count: 6
//	  seed: "#e4572e"
//	  output: yaml
//	update:
//	  repository: kartoffelquadrat/maxcolours
//
// Only fields present in a file override the layer below it.
package config
