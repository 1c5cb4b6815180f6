package easysteam

import (
	"fmt"
	"google.golang.org/protobuf/encoding/protowire"
)

var _ Codec = &ProtobufCodec{}

// ProtobufCodec implements the Codec interface.
// ProtobufCodec reads and writes the record structs in the protobuf wire format
// of the corresponding CM messages, without generated message types.
// Unknown fields are skipped.
type ProtobufCodec struct{}

// field numbers of the CM messages.
const (
	fieldEResult protowire.Number = 1

	fieldPlayerCount protowire.Number = 2

	fieldLeaderboardID          protowire.Number = 2
	fieldFindEntryCount         protowire.Number = 3
	fieldLeaderboardSortMethod  protowire.Number = 4
	fieldLeaderboardDisplayType protowire.Number = 5
	fieldLeaderboardName        protowire.Number = 6

	fieldEntriesEntryCount protowire.Number = 2
	fieldEntries           protowire.Number = 3

	fieldEntrySteamIDUser protowire.Number = 1
	fieldEntryGlobalRank  protowire.Number = 2
	fieldEntryScore       protowire.Number = 3
	fieldEntryDetails     protowire.Number = 4
	fieldEntryUGCID       protowire.Number = 5

	fieldCMAddresses          protowire.Number = 1
	fieldCMPorts              protowire.Number = 2
	fieldCMWebsocketAddresses protowire.Number = 3

	fieldServers    protowire.Number = 1
	fieldServerType protowire.Number = 1
	fieldServerIP   protowire.Number = 2
	fieldServerPort protowire.Number = 3
)

// defaultEResult is the declared default of every eresult field.
const defaultEResult = int32(EResultFail)

// Encode implements the Codec Encode method.
func (p *ProtobufCodec) Encode(v interface{}) ([]byte, error) {
	var b []byte
	switch rec := v.(type) {
	case *NumberOfPlayersRecord:
		b = appendInt32(b, fieldEResult, rec.EResult)
		b = appendInt32(b, fieldPlayerCount, rec.PlayerCount)
	case *FindOrCreateLeaderboardRecord:
		b = appendInt32(b, fieldEResult, rec.EResult)
		b = appendInt32(b, fieldLeaderboardID, rec.LeaderboardID)
		b = appendInt32(b, fieldFindEntryCount, rec.LeaderboardEntryCount)
		b = appendInt32(b, fieldLeaderboardSortMethod, rec.LeaderboardSortMethod)
		b = appendInt32(b, fieldLeaderboardDisplayType, rec.LeaderboardDisplayType)
		if rec.LeaderboardName != "" {
			b = protowire.AppendTag(b, fieldLeaderboardName, protowire.BytesType)
			b = protowire.AppendString(b, rec.LeaderboardName)
		}
	case *LeaderboardEntriesRecord:
		b = appendInt32(b, fieldEResult, rec.EResult)
		b = appendInt32(b, fieldEntriesEntryCount, rec.LeaderboardEntryCount)
		for i, e := range rec.Entries {
			if e == nil {
				return nil, fmt.Errorf("encode entry #%d: %w", i, ErrNilRecord)
			}
			b = protowire.AppendTag(b, fieldEntries, protowire.BytesType)
			b = protowire.AppendBytes(b, encodeLeaderboardEntry(e))
		}
	case *CMListRecord:
		for _, addr := range rec.CMAddresses {
			b = appendUint32(b, fieldCMAddresses, addr)
		}
		for _, port := range rec.CMPorts {
			b = appendUint32(b, fieldCMPorts, port)
		}
		for _, host := range rec.CMWebsocketAddresses {
			b = protowire.AppendTag(b, fieldCMWebsocketAddresses, protowire.BytesType)
			b = protowire.AppendString(b, host)
		}
	case *ServerListRecord:
		for i, s := range rec.Servers {
			if s == nil {
				return nil, fmt.Errorf("encode server #%d: %w", i, ErrNilRecord)
			}
			var sb []byte
			sb = appendUint32(sb, fieldServerType, s.ServerType)
			sb = appendUint32(sb, fieldServerIP, s.ServerIP)
			sb = appendUint32(sb, fieldServerPort, s.ServerPort)
			b = protowire.AppendTag(b, fieldServers, protowire.BytesType)
			b = protowire.AppendBytes(b, sb)
		}
	default:
		return nil, fmt.Errorf("v should be a record pointer but %T", v)
	}
	return b, nil
}

// Decode implements the Codec Decode method.
func (p *ProtobufCodec) Decode(data []byte, v interface{}) error {
	switch rec := v.(type) {
	case *NumberOfPlayersRecord:
		*rec = NumberOfPlayersRecord{EResult: defaultEResult}
		return decodeFields(data, func(r *pbReader, num protowire.Number, typ protowire.Type) {
			switch num {
			case fieldEResult:
				rec.EResult = r.int32(num, typ)
			case fieldPlayerCount:
				rec.PlayerCount = r.int32(num, typ)
			default:
				r.skip(num, typ)
			}
		})
	case *FindOrCreateLeaderboardRecord:
		*rec = FindOrCreateLeaderboardRecord{EResult: defaultEResult}
		return decodeFields(data, func(r *pbReader, num protowire.Number, typ protowire.Type) {
			switch num {
			case fieldEResult:
				rec.EResult = r.int32(num, typ)
			case fieldLeaderboardID:
				rec.LeaderboardID = r.int32(num, typ)
			case fieldFindEntryCount:
				rec.LeaderboardEntryCount = r.int32(num, typ)
			case fieldLeaderboardSortMethod:
				rec.LeaderboardSortMethod = r.int32(num, typ)
			case fieldLeaderboardDisplayType:
				rec.LeaderboardDisplayType = r.int32(num, typ)
			case fieldLeaderboardName:
				rec.LeaderboardName = string(r.bytes(num, typ))
			default:
				r.skip(num, typ)
			}
		})
	case *LeaderboardEntriesRecord:
		*rec = LeaderboardEntriesRecord{EResult: defaultEResult}
		return decodeFields(data, func(r *pbReader, num protowire.Number, typ protowire.Type) {
			switch num {
			case fieldEResult:
				rec.EResult = r.int32(num, typ)
			case fieldEntriesEntryCount:
				rec.LeaderboardEntryCount = r.int32(num, typ)
			case fieldEntries:
				entry := &LeaderboardEntryRecord{}
				if err := decodeLeaderboardEntry(r.bytes(num, typ), entry); err != nil {
					r.fail(err)
					return
				}
				rec.Entries = append(rec.Entries, entry)
			default:
				r.skip(num, typ)
			}
		})
	case *CMListRecord:
		*rec = CMListRecord{}
		return decodeFields(data, func(r *pbReader, num protowire.Number, typ protowire.Type) {
			switch num {
			case fieldCMAddresses:
				rec.CMAddresses = r.uint32s(num, typ, rec.CMAddresses)
			case fieldCMPorts:
				rec.CMPorts = r.uint32s(num, typ, rec.CMPorts)
			case fieldCMWebsocketAddresses:
				rec.CMWebsocketAddresses = append(rec.CMWebsocketAddresses, string(r.bytes(num, typ)))
			default:
				r.skip(num, typ)
			}
		})
	case *ServerListRecord:
		*rec = ServerListRecord{}
		return decodeFields(data, func(r *pbReader, num protowire.Number, typ protowire.Type) {
			if num != fieldServers {
				r.skip(num, typ)
				return
			}
			server := &ServerListEntry{}
			err := decodeFields(r.bytes(num, typ), func(r *pbReader, num protowire.Number, typ protowire.Type) {
				switch num {
				case fieldServerType:
					server.ServerType = uint32(r.varint(num, typ))
				case fieldServerIP:
					server.ServerIP = uint32(r.varint(num, typ))
				case fieldServerPort:
					server.ServerPort = uint32(r.varint(num, typ))
				default:
					r.skip(num, typ)
				}
			})
			if err != nil {
				r.fail(fmt.Errorf("server: %w", err))
				return
			}
			rec.Servers = append(rec.Servers, server)
		})
	}
	return fmt.Errorf("v should be a record pointer but %T", v)
}

func encodeLeaderboardEntry(e *LeaderboardEntryRecord) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldEntrySteamIDUser, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, e.SteamIDUser)
	b = appendInt32(b, fieldEntryGlobalRank, e.GlobalRank)
	b = appendInt32(b, fieldEntryScore, e.Score)
	if e.Details != nil {
		b = protowire.AppendTag(b, fieldEntryDetails, protowire.BytesType)
		b = protowire.AppendBytes(b, e.Details)
	}
	b = protowire.AppendTag(b, fieldEntryUGCID, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, e.UGCID)
	return b
}

func decodeLeaderboardEntry(data []byte, e *LeaderboardEntryRecord) error {
	err := decodeFields(data, func(r *pbReader, num protowire.Number, typ protowire.Type) {
		switch num {
		case fieldEntrySteamIDUser:
			e.SteamIDUser = r.fixed64(num, typ)
		case fieldEntryGlobalRank:
			e.GlobalRank = r.int32(num, typ)
		case fieldEntryScore:
			e.Score = r.int32(num, typ)
		case fieldEntryDetails:
			e.Details = append([]byte{}, r.bytes(num, typ)...)
		case fieldEntryUGCID:
			e.UGCID = r.fixed64(num, typ)
		default:
			r.skip(num, typ)
		}
	})
	if err != nil {
		return fmt.Errorf("entry: %w", err)
	}
	return nil
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v))) // negative values are sign extended
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

// decodeFields calls fn for each field in data, until data is exhausted or fn reports a failure.
func decodeFields(data []byte, fn func(r *pbReader, num protowire.Number, typ protowire.Type)) error {
	r := &pbReader{b: data}
	for len(r.b) > 0 && r.err == nil {
		num, typ, n := protowire.ConsumeTag(r.b)
		if !r.consume(n) {
			break
		}
		fn(r, num, typ)
	}
	return r.err
}

// pbReader consumes field values from b, remembering the first failure.
type pbReader struct {
	b   []byte
	err error
}

func (r *pbReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *pbReader) consume(n int) bool {
	if n < 0 {
		r.fail(protowire.ParseError(n))
		return false
	}
	r.b = r.b[n:]
	return true
}

func (r *pbReader) expect(num protowire.Number, typ, want protowire.Type) bool {
	if typ != want {
		r.fail(fmt.Errorf("field %d: unexpected wire type %d", num, typ))
		return false
	}
	return true
}

func (r *pbReader) varint(num protowire.Number, typ protowire.Type) uint64 {
	if !r.expect(num, typ, protowire.VarintType) {
		return 0
	}
	v, n := protowire.ConsumeVarint(r.b)
	if !r.consume(n) {
		return 0
	}
	return v
}

func (r *pbReader) int32(num protowire.Number, typ protowire.Type) int32 {
	return int32(r.varint(num, typ))
}

func (r *pbReader) fixed64(num protowire.Number, typ protowire.Type) uint64 {
	if !r.expect(num, typ, protowire.Fixed64Type) {
		return 0
	}
	v, n := protowire.ConsumeFixed64(r.b)
	if !r.consume(n) {
		return 0
	}
	return v
}

func (r *pbReader) bytes(num protowire.Number, typ protowire.Type) []byte {
	if !r.expect(num, typ, protowire.BytesType) {
		return nil
	}
	v, n := protowire.ConsumeBytes(r.b)
	if !r.consume(n) {
		return nil
	}
	return v
}

// uint32s reads a repeated uint32 field, which may be packed or not.
func (r *pbReader) uint32s(num protowire.Number, typ protowire.Type, dst []uint32) []uint32 {
	if typ != protowire.BytesType {
		v := r.varint(num, typ)
		if r.err != nil {
			return dst
		}
		return append(dst, uint32(v))
	}
	packed := r.bytes(num, typ)
	for len(packed) > 0 {
		v, n := protowire.ConsumeVarint(packed)
		if n < 0 {
			r.fail(protowire.ParseError(n))
			return dst
		}
		dst = append(dst, uint32(v))
		packed = packed[n:]
	}
	return dst
}

func (r *pbReader) skip(num protowire.Number, typ protowire.Type) {
	r.consume(protowire.ConsumeFieldValue(num, typ, r.b))
}
