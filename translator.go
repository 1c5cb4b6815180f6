package easysteam

import (
	"fmt"
)

// TranslatorOption is the option for Translator.
type TranslatorOption struct {
	// Codec decodes raw record bodies in TranslateRaw.
	// Defaults to ProtobufCodec.
	Codec Codec

	// WarnOnTruncation logs a warning whenever a record is translated with
	// one of the tolerated inconsistencies: mismatched address and port counts,
	// details payloads which aren't a multiple of 4 bytes, or an entry count
	// differing from the number of entries.
	// The translation itself is the same either way.
	WarnOnTruncation bool
}

// Translator translates response records into callbacks.
// Translator holds no mutable state and is safe for concurrent use.
type Translator struct {
	codec            Codec
	warnOnTruncation bool
}

// NewTranslator creates a Translator according to opt.
// opt can be nil.
func NewTranslator(opt *TranslatorOption) *Translator {
	if opt == nil {
		opt = &TranslatorOption{}
	}
	codec := opt.Codec
	if codec == nil {
		codec = &ProtobufCodec{}
	}
	return &Translator{
		codec:            codec,
		warnOnTruncation: opt.WarnOnTruncation,
	}
}

// Translate maps record, which must be a pointer to the record struct of kind,
// into the corresponding Callback carrying jobID.
// Returns a *RecordError if record is nil or doesn't belong to kind.
func (t *Translator) Translate(jobID JobID, kind RecordKind, record interface{}) (Callback, error) {
	if record == nil {
		return nil, newRecordError(kind, "%w", ErrNilRecord)
	}
	if t.warnOnTruncation {
		t.inspect(jobID, record)
	}
	switch kind {
	case RecordKindNumberOfPlayers:
		if rec, ok := record.(*NumberOfPlayersRecord); ok {
			return NewNumberOfPlayersCallback(jobID, rec)
		}
	case RecordKindFindOrCreateLeaderboard:
		if rec, ok := record.(*FindOrCreateLeaderboardRecord); ok {
			return NewFindOrCreateLeaderboardCallback(jobID, rec)
		}
	case RecordKindLeaderboardEntries:
		if rec, ok := record.(*LeaderboardEntriesRecord); ok {
			return NewLeaderboardEntriesCallback(jobID, rec)
		}
	case RecordKindCMList:
		if rec, ok := record.(*CMListRecord); ok {
			return NewCMListCallback(jobID, rec)
		}
	case RecordKindServerList:
		if rec, ok := record.(*ServerListRecord); ok {
			return NewServerListCallback(jobID, rec)
		}
	default:
		return nil, newRecordError(kind, "%w", ErrUnknownKind)
	}
	return nil, newRecordError(kind, "%w: got %T", ErrRecordMismatch, record)
}

// TranslateRaw decodes body with the translator's codec into the record of kind, then translates it.
func (t *Translator) TranslateRaw(jobID JobID, kind RecordKind, body []byte) (Callback, error) {
	record, ok := newRecord(kind)
	if !ok {
		return nil, newRecordError(kind, "%w", ErrUnknownKind)
	}
	if err := t.codec.Decode(body, record); err != nil {
		return nil, fmt.Errorf("decode %s body err: %w", kind, err)
	}
	return t.Translate(jobID, kind, record)
}

// Connected creates the callback of an established connection.
func (t *Translator) Connected() Callback {
	return NewConnectedCallback()
}

// Disconnected creates the callback of a torn down connection.
// userInitiated comes from the local disconnect trigger.
func (t *Translator) Disconnected(userInitiated bool) Callback {
	return NewDisconnectedCallback(userInitiated)
}

// inspect logs the tolerated inconsistencies of record.
func (t *Translator) inspect(jobID JobID, record interface{}) {
	switch rec := record.(type) {
	case *CMListRecord:
		if rec != nil && len(rec.CMAddresses) != len(rec.CMPorts) {
			Log.Warnf("job %s: cm list has %d addresses but %d ports, extra ones are dropped",
				jobID, len(rec.CMAddresses), len(rec.CMPorts))
		}
	case *LeaderboardEntriesRecord:
		if rec == nil {
			return
		}
		if int(rec.LeaderboardEntryCount) != len(rec.Entries) {
			Log.Warnf("job %s: leaderboard entry count is %d but %d entries were received",
				jobID, rec.LeaderboardEntryCount, len(rec.Entries))
		}
		for i, e := range rec.Entries {
			if e != nil && len(e.Details)%4 != 0 {
				Log.Warnf("job %s: entry #%d details has %d trailing bytes, dropped",
					jobID, i, len(e.Details)%4)
			}
		}
	}
}
