package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Kind classifies a server entry by the section it was declared in.
type Kind string

const (
	KindLocal  Kind = "local"
	KindRemote Kind = "remote"
)

// Server is one checkable host from the config file. Identity is Name.
type Server struct {
	IP   string
	Name string
	Kind Kind
}

// Settings are the tunables recognized outside any section.
type Settings struct {
	Timeout float64 // seconds per ping attempt
	Retries int
}

// DefaultSettings returns the values used when the config file sets nothing.
func DefaultSettings() Settings {
	return Settings{Timeout: 0.2, Retries: 3}
}

// ParseServers reads a servers.conf stream and returns the settings plus
// the server entries in file order. Malformed lines and unparsable setting
// values are skipped, never fatal.
func ParseServers(r io.Reader) (Settings, []Server, error) {
	settings := DefaultSettings()
	var servers []Server
	section := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			section = line[1 : len(line)-1]
		case strings.Contains(line, "="):
			applySetting(&settings, line)
		case Kind(section) == KindLocal || Kind(section) == KindRemote:
			if ip, name, ok := splitRecord(line); ok {
				servers = append(servers, Server{IP: ip, Name: name, Kind: Kind(section)})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return settings, servers, fmt.Errorf("reading configuration: %w", err)
	}

	return settings, servers, nil
}

// LoadServers parses the file at path.
func LoadServers(path string) (Settings, []Server, error) {
	f, err := open(path)
	if err != nil {
		return DefaultSettings(), nil, err
	}
	defer f.Close()
	return ParseServers(f)
}

// applySetting folds one "key = value" line into settings. Unknown keys
// and unparsable values keep the prior value.
func applySetting(settings *Settings, line string) {
	key, raw, _ := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	raw = strings.TrimSpace(raw)

	value, ok := parseNumber(raw)
	if !ok {
		return
	}

	switch key {
	case "timeout":
		settings.Timeout = value
	case "retries":
		settings.Retries = int(value)
	}
}

// parseNumber applies the config format's numeric rule: float when the
// value contains a dot, integer otherwise.
func parseNumber(raw string) (float64, bool) {
	if strings.Contains(raw, ".") {
		v, err := strconv.ParseFloat(raw, 64)
		return v, err == nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	return float64(v), err == nil
}

// splitRecord splits an entity line at the first whitespace run into
// (address, display name). Lines with fewer than two tokens are rejected.
func splitRecord(line string) (ip, name string, ok bool) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return "", "", false
	}
	ip = line[:idx]
	name = strings.TrimSpace(line[idx:])
	if name == "" {
		return "", "", false
	}
	return ip, name, true
}

// Filter returns the servers matching the requested kinds in original
// order. Asking for both kinds, or neither, returns the list unmodified.
func Filter(servers []Server, localOnly, remoteOnly bool) []Server {
	if localOnly == remoteOnly {
		return servers
	}
	want := KindLocal
	if remoteOnly {
		want = KindRemote
	}
	var out []Server
	for _, s := range servers {
		if s.Kind == want {
			out = append(out, s)
		}
	}
	return out
}
