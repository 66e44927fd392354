package probe

import (
	"context"
	"strings"
	"time"

	"github.com/docker/docker/api/types"

	"github.com/scottastone/check-servers/internal/config"
	"github.com/scottastone/check-servers/pkg/docker"
	"github.com/scottastone/check-servers/pkg/logger"
)

const containerRunning = "running"

// ContainerLister is the slice of the Docker client the host checker
// needs. Satisfied by *docker.Client and by test doubles.
type ContainerLister interface {
	Ping(timeout time.Duration) error
	ListContainers(ctx context.Context) ([]types.Container, error)
	Close() error
}

// HostChecker checks the configured containers of one Docker host at a
// time. Connection failures are host-scoped: when the daemon cannot be
// reached, every requested container on that host is marked StatusFail
// instead of being probed individually.
type HostChecker struct {
	Timeout time.Duration

	connect func(host string) (ContainerLister, error)
}

// NewHostChecker builds a checker backed by real Docker connections.
func NewHostChecker() *HostChecker {
	return &HostChecker{
		Timeout: 5 * time.Second,
		connect: func(host string) (ContainerLister, error) {
			return docker.NewClient(host)
		},
	}
}

// Check reports one result per configured container in the group,
// preserving the config order within the host.
func (hc *HostChecker) Check(group config.HostGroup) []ContainerResult {
	lister, err := hc.connect(group.Host)
	if err != nil {
		logger.Debug("Docker host unreachable", "host", group.Host, "error", err)
		return hc.failAll(group)
	}
	defer lister.Close()

	if err := lister.Ping(hc.Timeout); err != nil {
		logger.Debug("Docker daemon not answering", "host", group.Host, "error", err)
		return hc.failAll(group)
	}

	ctx, cancel := context.WithTimeout(context.Background(), hc.Timeout)
	defer cancel()

	containers, err := lister.ListContainers(ctx)
	if err != nil {
		logger.Debug("Docker listing failed", "host", group.Host, "error", err)
		return hc.failAll(group)
	}

	index := make(map[string]types.Container, len(containers))
	for _, c := range containers {
		for _, name := range c.Names {
			index[strings.TrimPrefix(name, "/")] = c
		}
	}

	results := make([]ContainerResult, 0, len(group.Containers))
	for _, name := range group.Containers {
		results = append(results, resolveContainer(name, group.Host, index))
	}
	return results
}

func resolveContainer(name, host string, index map[string]types.Container) ContainerResult {
	c, found := index[name]
	switch {
	case !found:
		return ContainerResult{Name: name, Host: host, Status: StatusDown, Info: "not found"}
	case c.State == containerRunning:
		return ContainerResult{Name: name, Host: host, Status: StatusOK, Info: c.State}
	default:
		return ContainerResult{Name: name, Host: host, Status: StatusDown, Info: c.State}
	}
}

func (hc *HostChecker) failAll(group config.HostGroup) []ContainerResult {
	results := make([]ContainerResult, 0, len(group.Containers))
	for _, name := range group.Containers {
		results = append(results, ContainerResult{
			Name:   name,
			Host:   group.Host,
			Status: StatusFail,
			Info:   "host unreachable",
		})
	}
	return results
}
