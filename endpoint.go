package easysteam

import (
	"net/netip"
)

// NewEndpoint converts the protocol's address representation into an endpoint.
// The address holds the first dotted octet in its most significant byte,
// so 0x7F000001 becomes 127.0.0.1. The port is narrowed to 16 bits.
func NewEndpoint(ip uint32, port uint32) netip.AddrPort {
	return netip.AddrPortFrom(Uint32ToIP(ip), uint16(port))
}

// Uint32ToIP converts the protocol's address representation into an IPv4 address.
func Uint32ToIP(ip uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(ip >> 24), byte(ip >> 16), byte(ip >> 8), byte(ip)})
}

// IPToUint32 is the inverse of Uint32ToIP.
// Returns 0 if addr is not an IPv4 (or IPv4-mapped IPv6) address.
func IPToUint32(addr netip.Addr) uint32 {
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0
	}
	b := addr.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
