package geo

import (
	"net/netip"
	"strings"
)

const mappedIPv4Prefix = "::ffff:"

// NormalizeAddress trims the raw client address, strips an IPv4-mapped IPv6
// prefix and parses it. ok is false when the input is not an IP address.
func NormalizeAddress(raw string) (addr netip.Addr, ok bool) {
	s := strings.TrimSpace(raw)
	if len(s) >= len(mappedIPv4Prefix) && strings.EqualFold(s[:len(mappedIPv4Prefix)], mappedIPv4Prefix) {
		s = s[len(mappedIPv4Prefix):]
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

// IsLocal reports whether addr is loopback, private or otherwise not
// routable on the public internet.
func IsLocal(addr netip.Addr) bool {
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsUnspecified() ||
		addr.IsLinkLocalUnicast()
}
