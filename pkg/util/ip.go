package util

import (
	"net/netip"
	"strings"
)

// MaskIP hides the host part of an address for display: the last octet of
// an IPv4 address, everything past the /48 of an IPv6 one. Unparsable input
// is returned unchanged.
func MaskIP(raw string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	addr = addr.Unmap()

	bits := 24
	if addr.Is6() {
		bits = 48
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return raw
	}
	if addr.Is4() {
		return strings.TrimSuffix(prefix.Addr().String(), "0") + "xxx"
	}
	return prefix.Addr().String()
}
