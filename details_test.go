package easysteam

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhuangsirui/binpacker"
	"testing"
)

func packDetails(t *testing.T, values ...int32) []byte {
	buff := bytes.NewBuffer(nil)
	packer := binpacker.NewPacker(detailsByteOrder, buff)
	for _, v := range values {
		packer.PushUint32(uint32(v))
	}
	require.NoError(t, packer.Error())
	return buff.Bytes()
}

func TestDecodeDetails(t *testing.T) {
	t.Run("when buffer is empty", func(t *testing.T) {
		assert.Empty(t, DecodeDetails(nil))
		assert.NotNil(t, DecodeDetails(nil))
		assert.Empty(t, DecodeDetails([]byte{}))
	})
	t.Run("when buffer is shorter than one group", func(t *testing.T) {
		assert.Empty(t, DecodeDetails([]byte{1, 2, 3}))
	})
	t.Run("when buffer holds whole groups", func(t *testing.T) {
		b := packDetails(t, 1, -1, 1<<30, -2147483648)
		assert.Equal(t, []int32{1, -1, 1 << 30, -2147483648}, DecodeDetails(b))
	})
	t.Run("when buffer is little endian", func(t *testing.T) {
		assert.Equal(t, []int32{0x04030201}, DecodeDetails([]byte{1, 2, 3, 4}))
	})
	t.Run("when buffer has 10 bytes", func(t *testing.T) {
		b := append(packDetails(t, 7, 8), 0xFF, 0xFF)
		require.Len(t, b, 10)
		assert.Equal(t, []int32{7, 8}, DecodeDetails(b))
	})
}

func TestDecodeDetails_truncation(t *testing.T) {
	full := packDetails(t, 11, 22, 33)
	for extra := 0; extra < 4; extra++ {
		b := append(append([]byte{}, full...), bytes.Repeat([]byte{0xAB}, extra)...)
		for size := 0; size <= len(b); size++ {
			got := DecodeDetails(b[:size])
			assert.Len(t, got, size/4)
			assert.Equal(t, DecodeDetails(b[:size-size%4]), got)
		}
	}
}
