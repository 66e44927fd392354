package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrSystemConfig is returned when a mutation targets the read-only
// system-scope file.
var ErrSystemConfig = fmt.Errorf("the system config is read-only; create a user config under ~/.config instead")

// AddServer appends a server entry to the user-scope config file, creating
// the file and its parent directory when absent. The entry lands directly
// under its section header, inserting the header when the section does not
// exist yet. Returns the path that was written.
func (p Paths) AddServer(srv Server) (string, error) {
	path, err := p.Locate()
	switch {
	case err != nil:
		// No config anywhere yet: start a fresh user-scope file.
		path = p.User
		if path == "" {
			return "", fmt.Errorf("cannot determine user config path")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("creating config directory: %w", err)
		}
	case path == p.System:
		return "", fmt.Errorf("cannot add %q to %s: %w", srv.Name, path, ErrSystemConfig)
	}

	content := ""
	if raw, err := os.ReadFile(path); err == nil {
		content = string(raw)
	}

	entry := fmt.Sprintf("%-15s %s\n", srv.IP, srv.Name)
	header := fmt.Sprintf("[%s]", srv.Kind)

	if idx := findHeader(content, header); idx >= 0 {
		insertAt := idx + len(header)
		// Step past the header's own newline, if any.
		if insertAt < len(content) && content[insertAt] == '\n' {
			insertAt++
		} else {
			// Header ends the file without a trailing newline; keep it
			// on its own line.
			entry = "\n" + entry
		}
		content = content[:insertAt] + entry + content[insertAt:]
	} else {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += "\n" + header + "\n" + entry
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// RemoveServer rewrites the config file at path dropping the entry lines
// whose section, address and name all match srv exactly. Matching on the
// parsed fields rather than raw substrings keeps unrelated entries whose
// text happens to contain the same address or name.
func (p Paths) RemoveServer(path string, srv Server) error {
	if path == p.System {
		return fmt.Errorf("cannot remove %q from %s: %w", srv.Name, path, ErrSystemConfig)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading configuration file %s: %w", path, err)
	}

	lines := strings.Split(string(raw), "\n")
	kept := make([]string, 0, len(lines))
	section := ""
	removed := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = trimmed[1 : len(trimmed)-1]
		} else if section == string(srv.Kind) && trimmed != "" && !strings.HasPrefix(trimmed, "#") && !strings.Contains(trimmed, "=") {
			if ip, name, ok := splitRecord(trimmed); ok && ip == srv.IP && name == srv.Name {
				removed++
				continue
			}
		}
		kept = append(kept, line)
	}

	if removed == 0 {
		return fmt.Errorf("no entry for %s (%s) found in %s", srv.Name, srv.IP, path)
	}

	if err := os.WriteFile(path, []byte(strings.Join(kept, "\n")), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// findHeader locates a section header on its own line.
func findHeader(content, header string) int {
	offset := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		if strings.TrimSpace(line) == header {
			return offset + strings.Index(line, header)
		}
		offset += len(line)
	}
	return -1
}
