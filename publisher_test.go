package easysteam

import (
	"context"
	"fmt"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type failingPublisher struct{}

func (f *failingPublisher) Publish(topic string, messages ...*message.Message) error {
	return fmt.Errorf("broker is down")
}

func (f *failingPublisher) Close() error { return nil }

func receive(t *testing.T, ch <-chan *message.Message) *message.Message {
	t.Helper()
	select {
	case msg := <-ch:
		msg.Ack()
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
	return nil
}

func TestPublisher_Dispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	p := NewPublisher(pubSub, nil)
	assert.Equal(t, "easysteam.NumberOfPlayers", p.Topic(CallbackKindNumberOfPlayers))

	t.Run("when callback is request-correlated", func(t *testing.T) {
		msgs, err := pubSub.Subscribe(ctx, p.Topic(CallbackKindNumberOfPlayers))
		require.NoError(t, err)

		cb, err := NewNumberOfPlayersCallback(12, &NumberOfPlayersRecord{EResult: 1, PlayerCount: 42})
		require.NoError(t, err)
		require.NoError(t, p.Dispatch(cb))

		msg := receive(t, msgs)
		assert.Equal(t, "NumberOfPlayers", msg.Metadata.Get(MetadataKind))
		assert.Equal(t, "12", msg.Metadata.Get(MetadataJobID))
		assert.JSONEq(t, `{"kind":"NumberOfPlayers","job_id":12,"result":1,"num_players":42}`, string(msg.Payload))
	})
	t.Run("when callback is a connection callback", func(t *testing.T) {
		msgs, err := pubSub.Subscribe(ctx, p.Topic(CallbackKindDisconnected))
		require.NoError(t, err)

		require.NoError(t, p.Dispatch(NewDisconnectedCallback(true)))

		msg := receive(t, msgs)
		assert.Empty(t, msg.Metadata.Get(MetadataJobID))
		assert.JSONEq(t, `{"kind":"Disconnected","user_initiated":true}`, string(msg.Payload))
	})
	t.Run("when callback is nil", func(t *testing.T) {
		assert.Error(t, p.Dispatch(nil))
	})
}

func TestPublisher_failures(t *testing.T) {
	t.Run("when publish fails", func(t *testing.T) {
		p := NewPublisher(&failingPublisher{}, &PublisherOption{TopicPrefix: "steam/"})
		err := p.Dispatch(NewConnectedCallback())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "steam/Connected")
	})
}

func TestNewCallbackSnapshot(t *testing.T) {
	t.Run("when callback is a server list", func(t *testing.T) {
		cb, err := NewServerListCallback(InvalidJobID, &ServerListRecord{Servers: []*ServerListEntry{
			{ServerType: uint32(EServerTypeCM), ServerIP: 0x01010101, ServerPort: 1},
			{ServerType: uint32(EServerTypeGM), ServerIP: 0x02020202, ServerPort: 2},
			{ServerType: uint32(EServerTypeCM), ServerIP: 0x03030303, ServerPort: 3},
		}})
		require.NoError(t, err)

		s := NewCallbackSnapshot(cb)
		assert.Nil(t, s.JobID)
		assert.Equal(t, []ServerSnapshot{
			{Type: "CM", Protocol: "tcp", Address: "1.1.1.1:1"},
			{Type: "CM", Protocol: "tcp", Address: "3.3.3.3:3"},
			{Type: "GM", Protocol: "tcp", Address: "2.2.2.2:2"},
		}, s.Servers)
	})
	t.Run("when callback is a cm list", func(t *testing.T) {
		cb, err := NewCMListCallback(InvalidJobID, &CMListRecord{
			CMAddresses: []uint32{0x01010101}, CMPorts: []uint32{1}, CMWebsocketAddresses: []string{"ws:443"},
		})
		require.NoError(t, err)
		assert.Equal(t, []ServerSnapshot{
			{Protocol: "tcp", Address: "1.1.1.1:1"},
			{Protocol: "websocket", Address: "ws:443"},
		}, NewCallbackSnapshot(cb).Servers)
	})
	t.Run("when callback is a leaderboard", func(t *testing.T) {
		cb, err := NewFindOrCreateLeaderboardCallback(2, &FindOrCreateLeaderboardRecord{
			EResult: 1, LeaderboardID: 5, LeaderboardEntryCount: 10, LeaderboardSortMethod: 1, LeaderboardDisplayType: 1,
		})
		require.NoError(t, err)
		s := NewCallbackSnapshot(cb)
		require.NotNil(t, s.Result)
		assert.EqualValues(t, 1, *s.Result)
		assert.EqualValues(t, 5, s.LeaderboardID)
		assert.EqualValues(t, 10, s.EntryCount)
		assert.EqualValues(t, 1, s.SortMethod)
		assert.EqualValues(t, 1, s.DisplayType)
	})
	t.Run("when callback has entries", func(t *testing.T) {
		cb, err := NewLeaderboardEntriesCallback(2, &LeaderboardEntriesRecord{
			EResult: 1, LeaderboardEntryCount: 1,
			Entries: []*LeaderboardEntryRecord{{SteamIDUser: 1, GlobalRank: 1, Score: 5, Details: []byte{2, 0, 0, 0}, UGCID: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, []LeaderboardEntrySnapshot{
			{SteamID: 1, GlobalRank: 1, Score: 5, UGCID: 3, Details: []int32{2}},
		}, NewCallbackSnapshot(cb).Entries)
	})
	t.Run("when encoded with msgpack", func(t *testing.T) {
		c := &MsgpackCodec{}
		b, err := c.Encode(NewCallbackSnapshot(NewDisconnectedCallback(true)))
		require.NoError(t, err)
		var s CallbackSnapshot
		require.NoError(t, c.Decode(b, &s))
		assert.Equal(t, "Disconnected", s.Kind)
		assert.True(t, s.UserInitiated)
	})
}
