// Package easysteam translates the response records of the Steam CM protocol
// into immutable, typed callbacks and hands them over to a Dispatcher.
package easysteam

import (
	"fmt"
)

// CallbackKind names the variant of a Callback.
type CallbackKind int

const (
	CallbackKindConnected CallbackKind = iota + 1
	CallbackKindDisconnected
	CallbackKindCMList
	CallbackKindServerList
	CallbackKindNumberOfPlayers
	CallbackKindFindOrCreateLeaderboard
	CallbackKindLeaderboardEntries
)

var callbackKindNames = map[CallbackKind]string{
	CallbackKindConnected:               "Connected",
	CallbackKindDisconnected:            "Disconnected",
	CallbackKindCMList:                  "CMList",
	CallbackKindServerList:              "ServerList",
	CallbackKindNumberOfPlayers:         "NumberOfPlayers",
	CallbackKindFindOrCreateLeaderboard: "FindOrCreateLeaderboard",
	CallbackKindLeaderboardEntries:      "LeaderboardEntries",
}

func (k CallbackKind) String() string {
	if name, ok := callbackKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CallbackKind(%d)", int(k))
}

// Callback is the immutable, typed result of translating one response record
// or one connection lifecycle notification.
// The set of callbacks is closed: only this package implements Callback.
type Callback interface {
	// JobID returns the id of the request the callback answers,
	// or InvalidJobID when the callback is not request-correlated.
	JobID() JobID

	// Kind returns the variant of the callback.
	Kind() CallbackKind

	sealed()
}

// callbackMsg holds what every callback carries.
type callbackMsg struct {
	jobID JobID
}

// JobID implements the Callback JobID method.
func (c callbackMsg) JobID() JobID {
	return c.jobID
}

func (c callbackMsg) sealed() {}
