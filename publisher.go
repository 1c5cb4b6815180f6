package easysteam

import (
	"fmt"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"net/netip"
	"strconv"
)

// Metadata keys set on published messages.
const (
	MetadataKind  = "callback_kind"
	MetadataJobID = "job_id"
)

// PublisherOption is the option for Publisher.
type PublisherOption struct {
	// TopicPrefix is prepended to the callback kind to build the topic.
	// Defaults to "easysteam.".
	TopicPrefix string

	// Codec encodes the CallbackSnapshot into the message payload.
	// Defaults to JsonCodec.
	Codec Codec
}

// Publisher is a Dispatcher publishing callbacks to a watermill message.Publisher,
// one topic per callback kind.
type Publisher struct {
	publisher   message.Publisher
	topicPrefix string
	codec       Codec
}

var _ Dispatcher = &Publisher{}

// NewPublisher creates a Publisher according to opt.
// opt can be nil.
func NewPublisher(pub message.Publisher, opt *PublisherOption) *Publisher {
	if opt == nil {
		opt = &PublisherOption{}
	}
	p := &Publisher{
		publisher:   pub,
		topicPrefix: opt.TopicPrefix,
		codec:       opt.Codec,
	}
	if p.topicPrefix == "" {
		p.topicPrefix = "easysteam."
	}
	if p.codec == nil {
		p.codec = &JsonCodec{}
	}
	return p
}

// Topic returns the topic callbacks of kind are published to.
func (p *Publisher) Topic(kind CallbackKind) string {
	return p.topicPrefix + kind.String()
}

// Dispatch implements the Dispatcher Dispatch method.
func (p *Publisher) Dispatch(cb Callback) error {
	if cb == nil {
		return fmt.Errorf("cannot publish nil callback")
	}
	payload, err := p.codec.Encode(NewCallbackSnapshot(cb))
	if err != nil {
		return fmt.Errorf("encode %s snapshot err: %w", cb.Kind(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(MetadataKind, cb.Kind().String())
	if cb.JobID().IsValid() {
		msg.Metadata.Set(MetadataJobID, strconv.FormatUint(uint64(cb.JobID()), 10))
	}

	topic := p.Topic(cb.Kind())
	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to topic %s err: %w", topic, err)
	}
	return nil
}

// CallbackSnapshot is the serializable form of a Callback.
// Only the fields of the callback's kind are set.
type CallbackSnapshot struct {
	Kind          string                     `json:"kind" msgpack:"kind"`
	JobID         *uint64                    `json:"job_id,omitempty" msgpack:"job_id,omitempty"`
	Result        *int32                     `json:"result,omitempty" msgpack:"result,omitempty"`
	NumPlayers    uint32                     `json:"num_players,omitempty" msgpack:"num_players,omitempty"`
	LeaderboardID int32                      `json:"leaderboard_id,omitempty" msgpack:"leaderboard_id,omitempty"`
	EntryCount    int32                      `json:"entry_count,omitempty" msgpack:"entry_count,omitempty"`
	SortMethod    int32                      `json:"sort_method,omitempty" msgpack:"sort_method,omitempty"`
	DisplayType   int32                      `json:"display_type,omitempty" msgpack:"display_type,omitempty"`
	Entries       []LeaderboardEntrySnapshot `json:"entries,omitempty" msgpack:"entries,omitempty"`
	UserInitiated bool                       `json:"user_initiated,omitempty" msgpack:"user_initiated,omitempty"`
	Servers       []ServerSnapshot           `json:"servers,omitempty" msgpack:"servers,omitempty"`
}

// LeaderboardEntrySnapshot is the serializable form of a LeaderboardEntry.
type LeaderboardEntrySnapshot struct {
	SteamID    uint64  `json:"steam_id" msgpack:"steam_id"`
	GlobalRank int32   `json:"global_rank" msgpack:"global_rank"`
	Score      int32   `json:"score" msgpack:"score"`
	UGCID      uint64  `json:"ugc_id" msgpack:"ugc_id"`
	Details    []int32 `json:"details" msgpack:"details"`
}

// ServerSnapshot is the serializable form of a server address.
// Type is only set for server list callbacks.
type ServerSnapshot struct {
	Type     string `json:"type,omitempty" msgpack:"type,omitempty"`
	Protocol string `json:"protocol" msgpack:"protocol"`
	Address  string `json:"address" msgpack:"address"`
}

// NewCallbackSnapshot builds the serializable form of cb.
func NewCallbackSnapshot(cb Callback) *CallbackSnapshot {
	s := &CallbackSnapshot{Kind: cb.Kind().String()}
	if cb.JobID().IsValid() {
		id := uint64(cb.JobID())
		s.JobID = &id
	}
	setResult := func(r EResult) {
		v := int32(r)
		s.Result = &v
	}

	switch c := cb.(type) {
	case *DisconnectedCallback:
		s.UserInitiated = c.UserInitiated()
	case *NumberOfPlayersCallback:
		setResult(c.Result())
		s.NumPlayers = c.NumPlayers()
	case *FindOrCreateLeaderboardCallback:
		setResult(c.Result())
		s.LeaderboardID = c.ID()
		s.EntryCount = c.EntryCount()
		s.SortMethod = int32(c.SortMethod())
		s.DisplayType = int32(c.DisplayType())
	case *LeaderboardEntriesCallback:
		setResult(c.Result())
		s.EntryCount = c.EntryCount()
		for _, e := range c.Entries() {
			s.Entries = append(s.Entries, LeaderboardEntrySnapshot{
				SteamID:    uint64(e.SteamID()),
				GlobalRank: e.GlobalRank(),
				Score:      e.Score(),
				UGCID:      uint64(e.UGCID()),
				Details:    e.Details(),
			})
		}
	case *CMListCallback:
		for _, srv := range c.Servers() {
			s.Servers = append(s.Servers, ServerSnapshot{
				Protocol: srv.Protocol().String(),
				Address:  srv.Address(),
			})
		}
	case *ServerListCallback:
		c.Servers().Range(func(typ EServerType, endpoints []netip.AddrPort) bool {
			for _, ep := range endpoints {
				s.Servers = append(s.Servers, ServerSnapshot{
					Type:     typ.String(),
					Protocol: ProtocolTCP.String(),
					Address:  ep.String(),
				})
			}
			return true
		})
	}
	return s
}
