package easysteam

import (
	"fmt"
)

// RecordKind names the kind of a response record, which decides the mapper used to translate it.
type RecordKind int

const (
	RecordKindNumberOfPlayers RecordKind = iota + 1
	RecordKindFindOrCreateLeaderboard
	RecordKindLeaderboardEntries
	RecordKindCMList
	RecordKindServerList
)

func (k RecordKind) String() string {
	switch k {
	case RecordKindNumberOfPlayers:
		return "NumberOfPlayers"
	case RecordKindFindOrCreateLeaderboard:
		return "FindOrCreateLeaderboard"
	case RecordKindLeaderboardEntries:
		return "LeaderboardEntries"
	case RecordKindCMList:
		return "CMList"
	case RecordKindServerList:
		return "ServerList"
	}
	return fmt.Sprintf("RecordKind(%d)", int(k))
}

// newRecord returns a pointer to a zero record of kind k, used as decoding target.
func newRecord(k RecordKind) (interface{}, bool) {
	switch k {
	case RecordKindNumberOfPlayers:
		return &NumberOfPlayersRecord{}, true
	case RecordKindFindOrCreateLeaderboard:
		return &FindOrCreateLeaderboardRecord{}, true
	case RecordKindLeaderboardEntries:
		return &LeaderboardEntriesRecord{}, true
	case RecordKindCMList:
		return &CMListRecord{}, true
	case RecordKindServerList:
		return &ServerListRecord{}, true
	}
	return nil, false
}

// NumberOfPlayersRecord is the response to a current players count request.
type NumberOfPlayersRecord struct {
	EResult     int32 `json:"eresult" msgpack:"eresult"`
	PlayerCount int32 `json:"player_count" msgpack:"player_count"`
}

// FindOrCreateLeaderboardRecord is the response to a leaderboard find or create request.
type FindOrCreateLeaderboardRecord struct {
	EResult                int32  `json:"eresult" msgpack:"eresult"`
	LeaderboardID          int32  `json:"leaderboard_id" msgpack:"leaderboard_id"`
	LeaderboardEntryCount  int32  `json:"leaderboard_entry_count" msgpack:"leaderboard_entry_count"`
	LeaderboardSortMethod  int32  `json:"leaderboard_sort_method" msgpack:"leaderboard_sort_method"`
	LeaderboardDisplayType int32  `json:"leaderboard_display_type" msgpack:"leaderboard_display_type"`
	LeaderboardName        string `json:"leaderboard_name,omitempty" msgpack:"leaderboard_name,omitempty"`
}

// LeaderboardEntriesRecord is the response to a leaderboard entries request.
type LeaderboardEntriesRecord struct {
	EResult               int32                     `json:"eresult" msgpack:"eresult"`
	LeaderboardEntryCount int32                     `json:"leaderboard_entry_count" msgpack:"leaderboard_entry_count"`
	Entries               []*LeaderboardEntryRecord `json:"entries" msgpack:"entries"`
}

// LeaderboardEntryRecord is one entry of a LeaderboardEntriesRecord.
type LeaderboardEntryRecord struct {
	SteamIDUser uint64 `json:"steam_id_user" msgpack:"steam_id_user"`
	GlobalRank  int32  `json:"global_rank" msgpack:"global_rank"`
	Score       int32  `json:"score" msgpack:"score"`
	Details     []byte `json:"details" msgpack:"details"`
	UGCID       uint64 `json:"ugc_id" msgpack:"ugc_id"`
}

// CMListRecord is the list of connection managers pushed by the remote service.
// CMAddresses and CMPorts are parallel sequences.
type CMListRecord struct {
	CMAddresses          []uint32 `json:"cm_addresses" msgpack:"cm_addresses"`
	CMPorts              []uint32 `json:"cm_ports" msgpack:"cm_ports"`
	CMWebsocketAddresses []string `json:"cm_websocket_addresses" msgpack:"cm_websocket_addresses"`
}

// ServerListRecord is a flat, tagged list of publicly available servers.
type ServerListRecord struct {
	Servers []*ServerListEntry `json:"servers" msgpack:"servers"`
}

// ServerListEntry is one server of a ServerListRecord.
type ServerListEntry struct {
	ServerType uint32 `json:"server_type" msgpack:"server_type"`
	ServerIP   uint32 `json:"server_ip" msgpack:"server_ip"`
	ServerPort uint32 `json:"server_port" msgpack:"server_port"`
}
