// Package config provides configuration management for prism.
//
// This package implements a layered configuration system that allows users
// to customize prism's behavior through YAML files. Configuration is loaded
// from multiple sources and merged in a specific order, with later sources
// overriding earlier ones:
//
//  1. Default Configuration (embedded in binary)
//  2. User Configuration (~/.config/prism/config.yaml)
//  3. Project Configuration (./.prism/config.yaml)
//
// CLI flags (--theme, --editor) override all file-based layers.
//
// # Configuration Structure
//
//	colorMode: auto        # auto, dark or light
//	theme: github-dark     # any chroma style name
//	editor: nvim           # overrides $VISUAL/$EDITOR
//	lineNumbers: true
//	scrollOffset: 0.33     # fraction of viewer height for the focused line
//	listWidth: 0.30        # fraction of terminal width for the file list
package config
