package easysteam

import (
	"net/netip"
	"slices"
)

var (
	_ Callback = &ConnectedCallback{}
	_ Callback = &DisconnectedCallback{}
	_ Callback = &CMListCallback{}
	_ Callback = &ServerListCallback{}
)

// ConnectedCallback is received after a connection to the network is established.
type ConnectedCallback struct {
	callbackMsg
}

// NewConnectedCallback creates a ConnectedCallback.
// Connection callbacks are not request-correlated.
func NewConnectedCallback() *ConnectedCallback {
	return &ConnectedCallback{callbackMsg{jobID: InvalidJobID}}
}

// Kind implements the Callback Kind method.
func (c *ConnectedCallback) Kind() CallbackKind { return CallbackKindConnected }

// DisconnectedCallback is received when the connection to the network is torn down.
type DisconnectedCallback struct {
	callbackMsg
	userInitiated bool
}

// NewDisconnectedCallback creates a DisconnectedCallback from the local disconnect trigger.
func NewDisconnectedCallback(userInitiated bool) *DisconnectedCallback {
	return &DisconnectedCallback{
		callbackMsg:   callbackMsg{jobID: InvalidJobID},
		userInitiated: userInitiated,
	}
}

// Kind implements the Callback Kind method.
func (c *DisconnectedCallback) Kind() CallbackKind { return CallbackKindDisconnected }

// UserInitiated returns true if the caller asked for the disconnection,
// false if it was caused by something else, such as a network failure
// or the remote server dropping the connection.
func (c *DisconnectedCallback) UserInitiated() bool { return c.userInitiated }

// ProtocolType is the transport a server record is reachable through.
type ProtocolType int

const (
	ProtocolTCP ProtocolType = iota + 1
	ProtocolWebSocket
)

func (p ProtocolType) String() string {
	switch p {
	case ProtocolTCP:
		return "tcp"
	case ProtocolWebSocket:
		return "websocket"
	}
	return "unknown"
}

// ServerRecord is a connection manager address.
// Socket records carry an endpoint, websocket records carry a host string as sent by the remote service.
type ServerRecord struct {
	protocol ProtocolType
	endpoint netip.AddrPort
	host     string
}

func newSocketServer(endpoint netip.AddrPort) ServerRecord {
	return ServerRecord{protocol: ProtocolTCP, endpoint: endpoint}
}

func newWebSocketServer(host string) ServerRecord {
	return ServerRecord{protocol: ProtocolWebSocket, host: host}
}

// Protocol returns the transport of the record.
func (s ServerRecord) Protocol() ProtocolType { return s.protocol }

// Endpoint returns the endpoint of a socket record.
// The second value is false for websocket records.
func (s ServerRecord) Endpoint() (netip.AddrPort, bool) {
	return s.endpoint, s.protocol == ProtocolTCP
}

// Address returns the record's address in host:port form.
func (s ServerRecord) Address() string {
	if s.protocol == ProtocolTCP {
		return s.endpoint.String()
	}
	return s.host
}

func (s ServerRecord) String() string {
	return s.protocol.String() + "://" + s.Address()
}

// CMListCallback is received when the remote service pushes the connection manager list.
type CMListCallback struct {
	callbackMsg
	servers []ServerRecord
}

// NewCMListCallback maps a CMListRecord.
// Socket records are built by pairing addresses with ports positionally,
// stopping at the shorter of the two sequences; websocket records follow them.
func NewCMListCallback(jobID JobID, rec *CMListRecord) (*CMListCallback, error) {
	if rec == nil {
		return nil, newRecordError(RecordKindCMList, "%w", ErrNilRecord)
	}
	servers := Zip(rec.CMAddresses, rec.CMPorts, func(addr, port uint32) ServerRecord {
		return newSocketServer(NewEndpoint(addr, port))
	})
	for _, host := range rec.CMWebsocketAddresses {
		servers = append(servers, newWebSocketServer(host))
	}
	return &CMListCallback{
		callbackMsg: callbackMsg{jobID: jobID},
		servers:     servers,
	}, nil
}

// Kind implements the Callback Kind method.
func (c *CMListCallback) Kind() CallbackKind { return CallbackKindCMList }

// Servers returns a copy of the server list, socket records first.
func (c *CMListCallback) Servers() []ServerRecord { return slices.Clone(c.servers) }

// ServerListCallback is received when the remote service pushes a list of its publicly available servers.
// It may be received several times, for different lists.
type ServerListCallback struct {
	callbackMsg
	servers *Groups[EServerType, netip.AddrPort]
}

// NewServerListCallback maps a ServerListRecord,
// grouping the server endpoints by server type.
func NewServerListCallback(jobID JobID, rec *ServerListRecord) (*ServerListCallback, error) {
	if rec == nil {
		return nil, newRecordError(RecordKindServerList, "%w", ErrNilRecord)
	}
	for i, s := range rec.Servers {
		if s == nil {
			return nil, newRecordError(RecordKindServerList, "%w: server #%d", ErrNilRecord, i)
		}
	}
	servers := GroupBy(rec.Servers,
		func(s *ServerListEntry) EServerType { return EServerType(int32(s.ServerType)) },
		func(s *ServerListEntry) netip.AddrPort { return NewEndpoint(s.ServerIP, s.ServerPort) },
	)
	return &ServerListCallback{
		callbackMsg: callbackMsg{jobID: jobID},
		servers:     servers,
	}, nil
}

// Kind implements the Callback Kind method.
func (c *ServerListCallback) Kind() CallbackKind { return CallbackKindServerList }

// Servers returns the endpoints grouped by server type,
// types ordered by first appearance in the record.
func (c *ServerListCallback) Servers() *Groups[EServerType, netip.AddrPort] { return c.servers }
