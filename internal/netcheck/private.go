package netcheck

import (
	"net"
)

// LookupFunc resolves a hostname to IP addresses. Injected so tests can run
// without DNS.
type LookupFunc func(host string) ([]net.IP, error)

// Detector decides whether a hostname or literal IP belongs to a private
// (non-routable) network.
type Detector struct {
	lookup LookupFunc
}

// NewDetector creates a Detector using the system resolver. Pass a non-nil
// lookup to override resolution in tests.
func NewDetector(lookup LookupFunc) *Detector {
	if lookup == nil {
		lookup = net.LookupIP
	}
	return &Detector{lookup: lookup}
}

// IsPrivateHost reports whether host is a private IP, or resolves to one.
// Resolution failures and malformed input report false: a dead public
// service must not be mistaken for homelab infrastructure.
func (d *Detector) IsPrivateHost(host string) bool {
	if host == "" {
		return false
	}

	if ip := net.ParseIP(host); ip != nil {
		return isPrivateIP(ip)
	}

	ips, err := d.lookup(host)
	if err != nil || len(ips) == 0 {
		return false
	}
	return isPrivateIP(ips[0])
}

// IsPrivateURI extracts the host from a URI and checks it.
func (d *Detector) IsPrivateURI(uri string) bool {
	return d.IsPrivateHost(HostFromURI(uri))
}

func isPrivateIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast()
}
