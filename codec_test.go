package easysteam

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"testing"
)

func TestJsonCodec_Decode(t *testing.T) {
	c := &JsonCodec{}
	data := []byte(`{"eresult": 1, "player_count": 42}`)
	var v NumberOfPlayersRecord
	assert.NoError(t, c.Decode(data, &v))
	assert.Equal(t, NumberOfPlayersRecord{EResult: 1, PlayerCount: 42}, v)
}

func TestJsonCodec_Encode(t *testing.T) {
	c := &JsonCodec{}
	b, err := c.Encode(&NumberOfPlayersRecord{EResult: 1, PlayerCount: 42})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"eresult": 1, "player_count": 42}`, string(b))
}

func TestMsgpackCodec(t *testing.T) {
	c := &MsgpackCodec{}
	rec := &LeaderboardEntriesRecord{
		EResult:               1,
		LeaderboardEntryCount: 1,
		Entries: []*LeaderboardEntryRecord{
			{SteamIDUser: 76561197960278073, GlobalRank: 1, Score: 900, Details: []byte{1, 0, 0, 0}, UGCID: 5},
		},
	}
	b, err := c.Encode(rec)
	require.NoError(t, err)

	var got LeaderboardEntriesRecord
	require.NoError(t, c.Decode(b, &got))
	if diff := cmp.Diff(rec, &got); diff != "" {
		t.Errorf("decoded record mismatch (-want +got):\n%s", diff)
	}
}

func TestProtobufCodec_Decode(t *testing.T) {
	c := &ProtobufCodec{}

	t.Run("when eresult is absent", func(t *testing.T) {
		var rec NumberOfPlayersRecord
		b := protowire.AppendTag(nil, fieldPlayerCount, protowire.VarintType)
		b = protowire.AppendVarint(b, 42)
		require.NoError(t, c.Decode(b, &rec))
		assert.Equal(t, NumberOfPlayersRecord{EResult: int32(EResultFail), PlayerCount: 42}, rec)
	})
	t.Run("when repeated fields are packed", func(t *testing.T) {
		var packed []byte
		packed = protowire.AppendVarint(packed, 0x7F000001)
		packed = protowire.AppendVarint(packed, 0x0A000001)

		b := protowire.AppendTag(nil, fieldCMAddresses, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
		b = protowire.AppendTag(b, fieldCMPorts, protowire.VarintType)
		b = protowire.AppendVarint(b, 27017)
		b = protowire.AppendTag(b, fieldCMPorts, protowire.VarintType)
		b = protowire.AppendVarint(b, 27018)

		var rec CMListRecord
		require.NoError(t, c.Decode(b, &rec))
		assert.Equal(t, []uint32{0x7F000001, 0x0A000001}, rec.CMAddresses)
		assert.Equal(t, []uint32{27017, 27018}, rec.CMPorts)
		assert.Empty(t, rec.CMWebsocketAddresses)
	})
	t.Run("when unknown fields are present", func(t *testing.T) {
		b := protowire.AppendTag(nil, 99, protowire.BytesType)
		b = protowire.AppendString(b, "ignored")
		b = protowire.AppendTag(b, fieldCMWebsocketAddresses, protowire.BytesType)
		b = protowire.AppendString(b, "cm.example.net:443")

		var rec CMListRecord
		require.NoError(t, c.Decode(b, &rec))
		assert.Equal(t, []string{"cm.example.net:443"}, rec.CMWebsocketAddresses)
	})
	t.Run("when wire type is unexpected", func(t *testing.T) {
		b := protowire.AppendTag(nil, fieldPlayerCount, protowire.BytesType)
		b = protowire.AppendString(b, "42")
		var rec NumberOfPlayersRecord
		assert.Error(t, c.Decode(b, &rec))
	})
	t.Run("when data is truncated", func(t *testing.T) {
		b, err := c.Encode(&FindOrCreateLeaderboardRecord{EResult: 1, LeaderboardName: "speedrun"})
		require.NoError(t, err)
		var rec FindOrCreateLeaderboardRecord
		assert.Error(t, c.Decode(b[:len(b)-1], &rec))
	})
	t.Run("when v is not a record", func(t *testing.T) {
		var s string
		assert.Error(t, c.Decode(nil, &s))
	})
}

func TestProtobufCodec_Encode(t *testing.T) {
	c := &ProtobufCodec{}

	records := []struct {
		name string
		rec  interface{}
		dst  interface{}
	}{
		{"find or create", &FindOrCreateLeaderboardRecord{
			EResult: 1, LeaderboardID: 7, LeaderboardEntryCount: 3,
			LeaderboardSortMethod: 2, LeaderboardDisplayType: 99, LeaderboardName: "speedrun",
		}, &FindOrCreateLeaderboardRecord{}},
		{"entries with negative values", &LeaderboardEntriesRecord{
			EResult: 1, LeaderboardEntryCount: 2,
			Entries: []*LeaderboardEntryRecord{
				{SteamIDUser: 76561197960278073, GlobalRank: 1, Score: -5, Details: []byte{1, 2, 3, 4, 5}, UGCID: 1},
				{SteamIDUser: 76561197960278074, GlobalRank: 2, Score: -10, UGCID: uint64(InvalidUGCHandle)},
			},
		}, &LeaderboardEntriesRecord{}},
		{"server list", &ServerListRecord{Servers: []*ServerListEntry{
			{ServerType: 7, ServerIP: 0x7F000001, ServerPort: 27017},
			{ServerType: 1, ServerIP: 0x0A000001, ServerPort: 27018},
		}}, &ServerListRecord{}},
	}
	for _, tc := range records {
		t.Run(tc.name, func(t *testing.T) {
			b, err := c.Encode(tc.rec)
			require.NoError(t, err)
			require.NoError(t, c.Decode(b, tc.dst))
			if diff := cmp.Diff(tc.rec, tc.dst); diff != "" {
				t.Errorf("decoded record mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("when a nested entry is nil", func(t *testing.T) {
		_, err := c.Encode(&ServerListRecord{Servers: []*ServerListEntry{nil}})
		assert.ErrorIs(t, err, ErrNilRecord)
	})
	t.Run("when v is not a record", func(t *testing.T) {
		_, err := c.Encode("test")
		assert.Error(t, err)
	})
}
