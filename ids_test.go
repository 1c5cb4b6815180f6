package easysteam

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewJobID(t *testing.T) {
	t.Run("when handle different types of id", func(t *testing.T) {
		var testIdInt = 1
		var testIdInt32 int32 = 1
		var testIdUint32 uint32 = 1
		var testIdUint64 uint64 = 1

		ids := []interface{}{
			testIdInt, &testIdInt,
			testIdInt32, &testIdInt32,
			testIdUint32, &testIdUint32,
			testIdUint64, &testIdUint64,
			"1",
		}
		for _, id := range ids {
			jobID, err := NewJobID(id)
			assert.NoError(t, err)
			assert.EqualValues(t, 1, jobID)
		}
	})
	t.Run("when handle invalid type of id", func(t *testing.T) {
		jobID, err := NewJobID("invalid")
		assert.Error(t, err)
		assert.Equal(t, InvalidJobID, jobID)
		assert.False(t, jobID.IsValid())
	})
}

func TestJobID_String(t *testing.T) {
	assert.Equal(t, "42", JobID(42).String())
	assert.Equal(t, "Invalid", InvalidJobID.String())
}

func TestSteamID(t *testing.T) {
	// universe 1, individual, desktop instance, account 12345
	id := SteamID(76561197960278073)
	assert.EqualValues(t, 12345, id.AccountID())
	assert.EqualValues(t, 1, id.Instance())
	assert.Equal(t, EAccountTypeIndividual, id.AccountType())
	assert.EqualValues(t, 1, id.Universe())
	assert.True(t, id.IsValid())
	assert.Equal(t, "[U:1:12345]", id.String())

	assert.False(t, SteamID(0).IsValid())
	assert.Equal(t, "[I:0:0]", SteamID(0).String())

	anon := SteamID(uint64(1)<<56 | uint64(EAccountTypeAnonGameServer)<<52 | uint64(7)<<32 | 99)
	assert.Equal(t, "[A:1:99:7]", anon.String())
}

func TestUGCHandle(t *testing.T) {
	assert.True(t, UGCHandle(123).IsValid())
	assert.False(t, InvalidUGCHandle.IsValid())
	assert.Equal(t, "123", UGCHandle(123).String())
}
