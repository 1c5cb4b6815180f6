package easysteam

import (
	"slices"
)

var (
	_ Callback = &NumberOfPlayersCallback{}
	_ Callback = &FindOrCreateLeaderboardCallback{}
	_ Callback = &LeaderboardEntriesCallback{}
)

// NumberOfPlayersCallback answers a current players count request.
type NumberOfPlayersCallback struct {
	callbackMsg
	result     EResult
	numPlayers uint32
}

// NewNumberOfPlayersCallback maps a NumberOfPlayersRecord.
func NewNumberOfPlayersCallback(jobID JobID, rec *NumberOfPlayersRecord) (*NumberOfPlayersCallback, error) {
	if rec == nil {
		return nil, newRecordError(RecordKindNumberOfPlayers, "%w", ErrNilRecord)
	}
	return &NumberOfPlayersCallback{
		callbackMsg: callbackMsg{jobID: jobID},
		result:      EResult(rec.EResult),
		numPlayers:  uint32(rec.PlayerCount),
	}, nil
}

// Kind implements the Callback Kind method.
func (c *NumberOfPlayersCallback) Kind() CallbackKind { return CallbackKindNumberOfPlayers }

// Result returns the result of the request.
func (c *NumberOfPlayersCallback) Result() EResult { return c.result }

// NumPlayers returns the current number of players.
func (c *NumberOfPlayersCallback) NumPlayers() uint32 { return c.numPlayers }

// FindOrCreateLeaderboardCallback answers a leaderboard find or create request.
type FindOrCreateLeaderboardCallback struct {
	callbackMsg
	result      EResult
	id          int32
	entryCount  int32
	sortMethod  ELeaderboardSortMethod
	displayType ELeaderboardDisplayType
}

// NewFindOrCreateLeaderboardCallback maps a FindOrCreateLeaderboardRecord.
// Sort method and display type values unknown to this package are kept.
func NewFindOrCreateLeaderboardCallback(jobID JobID, rec *FindOrCreateLeaderboardRecord) (*FindOrCreateLeaderboardCallback, error) {
	if rec == nil {
		return nil, newRecordError(RecordKindFindOrCreateLeaderboard, "%w", ErrNilRecord)
	}
	return &FindOrCreateLeaderboardCallback{
		callbackMsg: callbackMsg{jobID: jobID},
		result:      EResult(rec.EResult),
		id:          rec.LeaderboardID,
		entryCount:  rec.LeaderboardEntryCount,
		sortMethod:  ELeaderboardSortMethod(rec.LeaderboardSortMethod),
		displayType: ELeaderboardDisplayType(rec.LeaderboardDisplayType),
	}, nil
}

// Kind implements the Callback Kind method.
func (c *FindOrCreateLeaderboardCallback) Kind() CallbackKind {
	return CallbackKindFindOrCreateLeaderboard
}

// Result returns the result of the request.
func (c *FindOrCreateLeaderboardCallback) Result() EResult { return c.result }

// ID returns the leaderboard id.
func (c *FindOrCreateLeaderboardCallback) ID() int32 { return c.id }

// EntryCount returns how many entries the leaderboard has.
func (c *FindOrCreateLeaderboardCallback) EntryCount() int32 { return c.entryCount }

// SortMethod returns the sort method of the leaderboard.
func (c *FindOrCreateLeaderboardCallback) SortMethod() ELeaderboardSortMethod { return c.sortMethod }

// DisplayType returns the display type of the leaderboard.
func (c *FindOrCreateLeaderboardCallback) DisplayType() ELeaderboardDisplayType {
	return c.displayType
}

// LeaderboardEntry is a single entry of a LeaderboardEntriesCallback.
type LeaderboardEntry struct {
	steamID    SteamID
	globalRank int32
	score      int32
	ugcID      UGCHandle
	details    []int32
}

func newLeaderboardEntry(rec *LeaderboardEntryRecord) LeaderboardEntry {
	return LeaderboardEntry{
		steamID:    SteamID(rec.SteamIDUser),
		globalRank: rec.GlobalRank,
		score:      rec.Score,
		ugcID:      UGCHandle(rec.UGCID),
		details:    DecodeDetails(rec.Details),
	}
}

// SteamID returns the user owning the entry.
func (e LeaderboardEntry) SteamID() SteamID { return e.steamID }

// GlobalRank returns the global rank of the entry.
func (e LeaderboardEntry) GlobalRank() int32 { return e.globalRank }

// Score returns the score of the entry.
func (e LeaderboardEntry) Score() int32 { return e.score }

// UGCID returns the content attached to the entry.
func (e LeaderboardEntry) UGCID() UGCHandle { return e.ugcID }

// Details returns a copy of the game-defined information about how the score was achieved.
func (e LeaderboardEntry) Details() []int32 { return slices.Clone(e.details) }

// LeaderboardEntriesCallback answers a leaderboard entries request.
type LeaderboardEntriesCallback struct {
	callbackMsg
	result     EResult
	entryCount int32
	entries    []LeaderboardEntry
}

// NewLeaderboardEntriesCallback maps a LeaderboardEntriesRecord.
// Entries keep the order of the record.
//
// The remote service is expected to send EntryCount entries, but this isn't
// checked: EntryCount and Len may differ.
func NewLeaderboardEntriesCallback(jobID JobID, rec *LeaderboardEntriesRecord) (*LeaderboardEntriesCallback, error) {
	if rec == nil {
		return nil, newRecordError(RecordKindLeaderboardEntries, "%w", ErrNilRecord)
	}
	entries := make([]LeaderboardEntry, 0, len(rec.Entries))
	for i, e := range rec.Entries {
		if e == nil {
			return nil, newRecordError(RecordKindLeaderboardEntries, "%w: entry #%d", ErrNilRecord, i)
		}
		entries = append(entries, newLeaderboardEntry(e))
	}
	return &LeaderboardEntriesCallback{
		callbackMsg: callbackMsg{jobID: jobID},
		result:      EResult(rec.EResult),
		entryCount:  rec.LeaderboardEntryCount,
		entries:     entries,
	}, nil
}

// Kind implements the Callback Kind method.
func (c *LeaderboardEntriesCallback) Kind() CallbackKind { return CallbackKindLeaderboardEntries }

// Result returns the result of the request.
func (c *LeaderboardEntriesCallback) Result() EResult { return c.result }

// EntryCount returns how many entries the leaderboard has.
func (c *LeaderboardEntriesCallback) EntryCount() int32 { return c.entryCount }

// Len returns the number of entries in this response.
func (c *LeaderboardEntriesCallback) Len() int { return len(c.entries) }

// Entry returns the i-th entry. Panics if i is out of range.
func (c *LeaderboardEntriesCallback) Entry(i int) LeaderboardEntry { return c.entries[i] }

// Entries returns a copy of the entries in this response.
func (c *LeaderboardEntriesCallback) Entries() []LeaderboardEntry { return slices.Clone(c.entries) }
