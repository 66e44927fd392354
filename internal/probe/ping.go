package probe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/scottastone/check-servers/internal/config"
)

// timePattern extracts the round-trip time from ping output such as
// "64 bytes from 1.1.1.1: icmp_seq=1 ttl=57 time=11.5 ms".
var timePattern = regexp.MustCompile(`time=([\d.]+)\s*ms`)

// runFunc executes a command and reports its stdout and whether it exited
// zero. A non-nil error means the command could not run at all.
type runFunc func(name string, args ...string) (stdout string, exitZero bool, err error)

// Pinger checks server reachability by invoking the system ping utility.
type Pinger struct {
	Timeout float64 // seconds to wait per attempt (ping -W)
	Retries int

	run runFunc
}

// NewPinger builds a Pinger from the parsed settings.
func NewPinger(settings config.Settings) *Pinger {
	return &Pinger{
		Timeout: settings.Timeout,
		Retries: settings.Retries,
		run:     runCommand,
	}
}

// Check pings srv with up to Retries single-packet attempts, sequentially.
// The first attempt that exits zero with a parsable latency wins; a zero
// exit without one counts as a miss and the loop continues. Exhausting the
// retries yields StatusDown. The returned error is reserved for the ping
// binary itself being unusable.
func (p *Pinger) Check(srv config.Server) (PingResult, error) {
	args := []string{"-c", "1", "-W" + strconv.FormatFloat(p.Timeout, 'f', -1, 64), srv.IP}

	for attempt := 0; attempt < p.Retries; attempt++ {
		out, exitZero, err := p.run("ping", args...)
		if err != nil {
			return PingResult{}, fmt.Errorf("ping %s (%s): %w", srv.Name, srv.IP, err)
		}
		if !exitZero {
			continue
		}
		match := timePattern.FindStringSubmatch(out)
		if match == nil {
			continue
		}
		latency, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return PingResult{Server: srv, Status: StatusOK, Latency: latency}, nil
	}

	return PingResult{Server: srv, Status: StatusDown}, nil
}

func runCommand(name string, args ...string) (string, bool, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The ping ran and reported failure; that is a probe miss,
			// not an execution error.
			return out.String(), false, nil
		}
		return "", false, err
	}
	return out.String(), true, nil
}
