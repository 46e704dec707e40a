// Package config resolves the ambient, environment-supplied settings a
// Rei program runs under: the standard-library installation root, the
// recognized source-file extensions, and an optional per-project
// rei.yaml manifest. None of it is part of the scanner/parser/resolver/
// evaluator pipeline itself — it is the surface the CLI entrypoint
// (cmd/rei) reads before handing a file to that pipeline.
package config

import (
	"os"
	"runtime"
)

// Version is the current rei version. Set at build time via -ldflags,
// or left at this default for a source checkout.
var Version = "0.1.0"

// SourceFileExt is the canonical extension for Rei source files.
const SourceFileExt = ".rei"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".rei"}

// TrimSourceExt removes any recognized source extension from a
// filename. Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized
// source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// ReiHomeEnvVar is the override recognized for the standard-library
// installation root (spec §6).
const ReiHomeEnvVar = "REI_HOME"

// defaultHome returns the platform-specific default install root named
// by spec §6, keyed on GOOS.
func defaultHome() string {
	switch runtime.GOOS {
	case "darwin":
		return "/usr/local/share/rei/std"
	case "windows":
		return `C:\ProgramData\rei\std`
	default:
		return "/usr/share/rei/std"
	}
}

// ReiHome resolves the standard-library installation root: REI_HOME if
// set and non-empty, else the platform default.
func ReiHome() string {
	if home := os.Getenv(ReiHomeEnvVar); home != "" {
		return home
	}
	return defaultHome()
}
