// Package config locates, parses and mutates the servers.conf files the
// check tools share. The format is line oriented: comments, [section]
// headers, key = value settings and whitespace-separated entity records.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the config file name every tool looks for.
const FileName = "servers.conf"

// ErrNotFound is returned by Locate when neither path exists.
var ErrNotFound = errors.New("no configuration file found")

// Paths holds the user-scope and system-scope candidate locations for one
// tool's config file. User wins over system.
type Paths struct {
	User   string
	System string
}

// DefaultPaths builds the standard search paths for a tool:
// ~/.config/<tool>/servers.conf then /etc/<tool>/servers.conf.
func DefaultPaths(tool string) Paths {
	p := Paths{
		System: filepath.Join("/etc", tool, FileName),
	}
	if home, err := os.UserHomeDir(); err == nil {
		p.User = filepath.Join(home, ".config", tool, FileName)
	}
	return p
}

// Locate returns the first existing config file, checking the user path
// before the system path.
func (p Paths) Locate() (string, error) {
	for _, candidate := range []string{p.User, p.System} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

// open opens path for reading, wrapping failures with the offending path
// so the user sees which file could not be read.
func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file %s: %w", path, err)
	}
	return f, nil
}
