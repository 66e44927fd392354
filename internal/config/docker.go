package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LocalDockerHost is the group used for container names listed before any
// host= marker. The probe connects to the local daemon socket for it.
const LocalDockerHost = "localhost"

// HostGroup is one Docker endpoint plus the container names to check on it.
type HostGroup struct {
	Host       string
	Containers []string
}

// ParseContainers reads a check-docker config stream. Lines of the form
// "host=<name>" start (or reopen) a host group; bare lines are container
// names for the current group. A flat file with no markers checks the
// local daemon, matching the original single-host layout.
func ParseContainers(r io.Reader) ([]HostGroup, error) {
	var groups []HostGroup
	index := map[string]int{}
	current := -1

	ensure := func(host string) int {
		if i, ok := index[host]; ok {
			return i
		}
		groups = append(groups, HostGroup{Host: host})
		index[host] = len(groups) - 1
		return len(groups) - 1
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "host="):
			host := strings.TrimSpace(strings.TrimPrefix(line, "host="))
			if host != "" {
				current = ensure(host)
			}
		default:
			if current < 0 {
				current = ensure(LocalDockerHost)
			}
			groups[current].Containers = append(groups[current].Containers, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return groups, fmt.Errorf("reading configuration: %w", err)
	}

	return groups, nil
}

// LoadContainers parses the file at path.
func LoadContainers(path string) ([]HostGroup, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseContainers(f)
}
