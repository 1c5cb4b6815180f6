package easysteam

import (
	"bytes"
	"encoding/binary"
	"github.com/zhuangsirui/binpacker"
)

// detailsByteOrder is the byte order of the leaderboard entry details payload.
var detailsByteOrder binary.ByteOrder = binary.LittleEndian

// DecodeDetails decodes the raw details payload of a leaderboard entry
// into a sequence of int32, read consecutively from the start of b.
// The result always has len(b)/4 elements: trailing bytes which don't
// make up a whole int32 are ignored.
func DecodeDetails(b []byte) []int32 {
	n := len(b) / 4
	details := make([]int32, 0, n)
	if n == 0 {
		return details
	}

	unpacker := binpacker.NewUnpacker(detailsByteOrder, bytes.NewReader(b[:n*4]))
	for i := 0; i < n; i++ {
		v, err := unpacker.ShiftUint32()
		if err != nil {
			break // cannot happen, the reader holds exactly n groups
		}
		details = append(details, int32(v))
	}
	return details
}
