package probe

import (
	"net"
	"time"

	"github.com/miekg/dns"
)

// noRecord is the placeholder for a record type that did not resolve.
const noRecord = "-"

// exchangeFunc sends one DNS query to addr and returns the response.
type exchangeFunc func(m *dns.Msg, addr string) (*dns.Msg, error)

// DNSChecker issues A and AAAA queries against explicitly addressed
// resolvers. Every per-query failure mode (timeout, NXDOMAIN, empty
// answer, unreachable nameserver) collapses into "no record"; only the
// combined absence of both record types makes a resolver FAIL for a site.
type DNSChecker struct {
	exchange exchangeFunc
}

// NewDNSChecker builds a checker with the given per-query timeout in
// seconds.
func NewDNSChecker(timeout float64) *DNSChecker {
	client := &dns.Client{Timeout: time.Duration(timeout * float64(time.Second))}
	return &DNSChecker{
		exchange: func(m *dns.Msg, addr string) (*dns.Msg, error) {
			in, _, err := client.Exchange(m, addr)
			return in, err
		},
	}
}

// Query asks one resolver for site's A and AAAA records independently.
func (c *DNSChecker) Query(site, resolver string) DNSRecords {
	records := DNSRecords{
		IPv4: c.lookup(site, resolver, dns.TypeA),
		IPv6: c.lookup(site, resolver, dns.TypeAAAA),
	}
	if records.IPv4 == noRecord && records.IPv6 == noRecord {
		records.Status = StatusFail
	} else {
		records.Status = StatusOK
	}
	return records
}

// CheckSite queries both resolvers for one site and picks the display
// records, preferring the primary resolver's answers.
func (c *DNSChecker) CheckSite(site, primary, secondary string) SiteResult {
	p := c.Query(site, primary)
	s := c.Query(site, secondary)
	return SiteResult{
		Site:      site,
		Primary:   p,
		Secondary: s,
		IPv4:      prefer(p.IPv4, s.IPv4),
		IPv6:      prefer(p.IPv6, s.IPv6),
	}
}

func (c *DNSChecker) lookup(site, resolver string, qtype uint16) string {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(site), qtype)

	in, err := c.exchange(m, net.JoinHostPort(resolver, "53"))
	if err != nil || in == nil || in.Rcode != dns.RcodeSuccess {
		return noRecord
	}

	for _, rr := range in.Answer {
		switch record := rr.(type) {
		case *dns.A:
			if qtype == dns.TypeA {
				return record.A.String()
			}
		case *dns.AAAA:
			if qtype == dns.TypeAAAA {
				return record.AAAA.String()
			}
		}
	}
	return noRecord
}

func prefer(first, second string) string {
	if first != noRecord {
		return first
	}
	return second
}
