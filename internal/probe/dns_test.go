package probe

import (
	"errors"
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExchange answers queries from a (resolver addr, qtype) table; absent
// entries simulate a timeout.
func stubExchange(answers map[string]map[uint16]string) exchangeFunc {
	return func(m *dns.Msg, addr string) (*dns.Msg, error) {
		byType, ok := answers[addr]
		if !ok {
			return nil, errors.New("i/o timeout")
		}
		qtype := m.Question[0].Qtype
		value, ok := byType[qtype]

		reply := new(dns.Msg)
		reply.SetReply(m)
		if !ok {
			return reply, nil // NOERROR with empty answer
		}

		header := dns.RR_Header{Name: m.Question[0].Name, Rrtype: qtype, Class: dns.ClassINET, Ttl: 60}
		switch qtype {
		case dns.TypeA:
			reply.Answer = append(reply.Answer, &dns.A{Hdr: header, A: net.ParseIP(value)})
		case dns.TypeAAAA:
			reply.Answer = append(reply.Answer, &dns.AAAA{Hdr: header, AAAA: net.ParseIP(value)})
		}
		return reply, nil
	}
}

func TestDNSCheckerQuery_BothRecords(t *testing.T) {
	c := &DNSChecker{exchange: stubExchange(map[string]map[uint16]string{
		"10.0.0.5:53": {dns.TypeA: "142.250.74.78", dns.TypeAAAA: "2a00:1450:400f:80d::200e"},
	})}

	records := c.Query("google.com", "10.0.0.5")

	assert.Equal(t, StatusOK, records.Status)
	assert.Equal(t, "142.250.74.78", records.IPv4)
	assert.Equal(t, "2a00:1450:400f:80d::200e", records.IPv6)
}

func TestDNSCheckerQuery_OnlyOneRecordStillOK(t *testing.T) {
	c := &DNSChecker{exchange: stubExchange(map[string]map[uint16]string{
		"10.0.0.5:53": {dns.TypeA: "1.2.3.4"},
	})}

	records := c.Query("example.com", "10.0.0.5")

	assert.Equal(t, StatusOK, records.Status)
	assert.Equal(t, "1.2.3.4", records.IPv4)
	assert.Equal(t, "-", records.IPv6)
}

func TestDNSCheckerQuery_UnreachableResolverFails(t *testing.T) {
	c := &DNSChecker{exchange: stubExchange(nil)}

	records := c.Query("example.com", "10.0.0.99")

	assert.Equal(t, StatusFail, records.Status)
	assert.Equal(t, "-", records.IPv4)
	assert.Equal(t, "-", records.IPv6)
}

func TestDNSCheckerQuery_NXDomainFoldsToNoRecord(t *testing.T) {
	c := &DNSChecker{exchange: func(m *dns.Msg, addr string) (*dns.Msg, error) {
		reply := new(dns.Msg)
		reply.SetRcode(m, dns.RcodeNameError)
		return reply, nil
	}}

	records := c.Query("nxdomain.invalid", "10.0.0.5")
	assert.Equal(t, StatusFail, records.Status)
}

func TestDNSCheckerCheckSite_PrefersPrimaryRecords(t *testing.T) {
	c := &DNSChecker{exchange: stubExchange(map[string]map[uint16]string{
		"10.0.0.5:53": {dns.TypeA: "1.1.1.1"},
		"10.0.0.3:53": {dns.TypeA: "2.2.2.2", dns.TypeAAAA: "::2"},
	})}

	res := c.CheckSite("example.com", "10.0.0.5", "10.0.0.3")

	require.Equal(t, StatusOK, res.Primary.Status)
	require.Equal(t, StatusOK, res.Secondary.Status)
	// IPv4 comes from the primary, IPv6 falls back to the secondary.
	assert.Equal(t, "1.1.1.1", res.IPv4)
	assert.Equal(t, "::2", res.IPv6)
}

func TestDNSCheckerCheckSite_SecondaryFallback(t *testing.T) {
	c := &DNSChecker{exchange: stubExchange(map[string]map[uint16]string{
		"10.0.0.3:53": {dns.TypeA: "2.2.2.2"},
	})}

	res := c.CheckSite("example.com", "10.0.0.5", "10.0.0.3")

	assert.Equal(t, StatusFail, res.Primary.Status)
	assert.Equal(t, StatusOK, res.Secondary.Status)
	assert.Equal(t, "2.2.2.2", res.IPv4)
	assert.Equal(t, "-", res.IPv6)
}
