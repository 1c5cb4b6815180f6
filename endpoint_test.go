package easysteam

import (
	"github.com/stretchr/testify/assert"
	"net/netip"
	"testing"
)

func TestNewEndpoint(t *testing.T) {
	t.Run("when address is loopback", func(t *testing.T) {
		ep := NewEndpoint(0x7F000001, 27017)
		assert.Equal(t, "127.0.0.1:27017", ep.String())
	})
	t.Run("when address is zero", func(t *testing.T) {
		ep := NewEndpoint(0, 0)
		assert.Equal(t, netip.MustParseAddrPort("0.0.0.0:0"), ep)
	})
	t.Run("when address has all bits set", func(t *testing.T) {
		ep := NewEndpoint(0xFFFFFFFF, 65535)
		assert.Equal(t, "255.255.255.255:65535", ep.String())
	})
	t.Run("when port overflows 16 bits", func(t *testing.T) {
		ep := NewEndpoint(0x0A000001, 65536+80)
		assert.EqualValues(t, 80, ep.Port())
	})
}

func TestIPToUint32(t *testing.T) {
	for _, ip := range []uint32{0, 1, 0x7F000001, 0xC0A80101, 0xFFFFFFFF} {
		assert.Equal(t, ip, IPToUint32(Uint32ToIP(ip)))
	}
	assert.EqualValues(t, 0xC0A80101, IPToUint32(netip.MustParseAddr("::ffff:192.168.1.1")))
	assert.Zero(t, IPToUint32(netip.MustParseAddr("2001:db8::1")))
}
