// Package probe implements the three check operations: ICMP ping, Docker
// container state lookup and resolver-addressed DNS queries. Probes are
// independent of each other and fold every failure into their result
// rather than returning errors, except when the underlying tooling itself
// is unusable.
package probe

import "github.com/scottastone/check-servers/internal/config"

// Status is the closed set of probe outcomes.
type Status int

const (
	// StatusOK means the entity responded and is healthy.
	StatusOK Status = iota
	// StatusDown means the entity was reached for but is not up: ping
	// exhausted its retries, or the container exists stopped / not at all.
	StatusDown
	// StatusFail means the transport to the entity's host failed, so the
	// entity itself was never examined. Docker-only.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFail:
		return "FAIL"
	default:
		return "DOWN"
	}
}

// PingResult is the outcome of pinging one server. Latency is round-trip
// time in milliseconds and only meaningful when Status is StatusOK.
type PingResult struct {
	Server  config.Server
	Status  Status
	Latency float64
}

// ContainerResult is the outcome of checking one container on one host.
type ContainerResult struct {
	Name   string
	Host   string
	Status Status
	Info   string
}

// DNSRecords is the answer one resolver gave for one site. Missing record
// types are "-"; Status is StatusOK when either record type resolved.
type DNSRecords struct {
	Status Status
	IPv4   string
	IPv6   string
}

// SiteResult combines both resolvers' answers for one site. IPv4/IPv6 are
// the display records, preferring the primary resolver's answer.
type SiteResult struct {
	Site      string
	Primary   DNSRecords
	Secondary DNSRecords
	IPv4      string
	IPv6      string
}
