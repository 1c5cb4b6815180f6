package easysteam

import (
	"fmt"
)

// EResult is the status code the remote service attaches to a response.
// The enumeration is owned by the remote service, so values unknown to this package are kept as is.
type EResult int32

const (
	EResultInvalid               EResult = 0
	EResultOK                    EResult = 1
	EResultFail                  EResult = 2
	EResultNoConnection          EResult = 3
	EResultInvalidPassword       EResult = 5
	EResultLoggedInElsewhere     EResult = 6
	EResultInvalidProtocolVer    EResult = 7
	EResultInvalidParam          EResult = 8
	EResultFileNotFound          EResult = 9
	EResultBusy                  EResult = 10
	EResultInvalidState          EResult = 11
	EResultInvalidName           EResult = 12
	EResultInvalidEmail          EResult = 13
	EResultDuplicateName         EResult = 14
	EResultAccessDenied          EResult = 15
	EResultTimeout               EResult = 16
	EResultBanned                EResult = 17
	EResultAccountNotFound       EResult = 18
	EResultInvalidSteamID        EResult = 19
	EResultServiceUnavailable    EResult = 20
	EResultNotLoggedOn           EResult = 21
	EResultPending               EResult = 22
	EResultEncryptionFailure     EResult = 23
	EResultInsufficientPrivilege EResult = 24
	EResultLimitExceeded         EResult = 25
	EResultRevoked               EResult = 26
	EResultExpired               EResult = 27
	EResultAlreadyRedeemed       EResult = 28
	EResultDuplicateRequest      EResult = 29
	EResultAlreadyOwned          EResult = 30
	EResultIPNotFound            EResult = 31
	EResultPersistFailed         EResult = 32
	EResultLockingFailed         EResult = 33
	EResultLogonSessionReplaced  EResult = 34
	EResultConnectFailed         EResult = 35
	EResultHandshakeFailed       EResult = 36
	EResultIOFailure             EResult = 37
	EResultRemoteDisconnect      EResult = 38
)

var eResultNames = map[EResult]string{
	EResultInvalid:               "Invalid",
	EResultOK:                    "OK",
	EResultFail:                  "Fail",
	EResultNoConnection:          "NoConnection",
	EResultInvalidPassword:       "InvalidPassword",
	EResultLoggedInElsewhere:     "LoggedInElsewhere",
	EResultInvalidProtocolVer:    "InvalidProtocolVer",
	EResultInvalidParam:          "InvalidParam",
	EResultFileNotFound:          "FileNotFound",
	EResultBusy:                  "Busy",
	EResultInvalidState:          "InvalidState",
	EResultInvalidName:           "InvalidName",
	EResultInvalidEmail:          "InvalidEmail",
	EResultDuplicateName:         "DuplicateName",
	EResultAccessDenied:          "AccessDenied",
	EResultTimeout:               "Timeout",
	EResultBanned:                "Banned",
	EResultAccountNotFound:       "AccountNotFound",
	EResultInvalidSteamID:        "InvalidSteamID",
	EResultServiceUnavailable:    "ServiceUnavailable",
	EResultNotLoggedOn:           "NotLoggedOn",
	EResultPending:               "Pending",
	EResultEncryptionFailure:     "EncryptionFailure",
	EResultInsufficientPrivilege: "InsufficientPrivilege",
	EResultLimitExceeded:         "LimitExceeded",
	EResultRevoked:               "Revoked",
	EResultExpired:               "Expired",
	EResultAlreadyRedeemed:       "AlreadyRedeemed",
	EResultDuplicateRequest:      "DuplicateRequest",
	EResultAlreadyOwned:          "AlreadyOwned",
	EResultIPNotFound:            "IPNotFound",
	EResultPersistFailed:         "PersistFailed",
	EResultLockingFailed:         "LockingFailed",
	EResultLogonSessionReplaced:  "LogonSessionReplaced",
	EResultConnectFailed:         "ConnectFailed",
	EResultHandshakeFailed:       "HandshakeFailed",
	EResultIOFailure:             "IOFailure",
	EResultRemoteDisconnect:      "RemoteDisconnect",
}

func (r EResult) String() string {
	if name, ok := eResultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("EResult(%d)", int32(r))
}

// ELeaderboardSortMethod is the sort method of a leaderboard.
type ELeaderboardSortMethod int32

const (
	ELeaderboardSortMethodNone       ELeaderboardSortMethod = 0
	ELeaderboardSortMethodAscending  ELeaderboardSortMethod = 1
	ELeaderboardSortMethodDescending ELeaderboardSortMethod = 2
)

func (m ELeaderboardSortMethod) String() string {
	switch m {
	case ELeaderboardSortMethodNone:
		return "None"
	case ELeaderboardSortMethodAscending:
		return "Ascending"
	case ELeaderboardSortMethodDescending:
		return "Descending"
	}
	return fmt.Sprintf("ELeaderboardSortMethod(%d)", int32(m))
}

// ELeaderboardDisplayType is the display type of a leaderboard.
type ELeaderboardDisplayType int32

const (
	ELeaderboardDisplayTypeNone             ELeaderboardDisplayType = 0
	ELeaderboardDisplayTypeNumeric          ELeaderboardDisplayType = 1
	ELeaderboardDisplayTypeTimeSeconds      ELeaderboardDisplayType = 2
	ELeaderboardDisplayTypeTimeMilliSeconds ELeaderboardDisplayType = 3
)

func (d ELeaderboardDisplayType) String() string {
	switch d {
	case ELeaderboardDisplayTypeNone:
		return "None"
	case ELeaderboardDisplayTypeNumeric:
		return "Numeric"
	case ELeaderboardDisplayTypeTimeSeconds:
		return "TimeSeconds"
	case ELeaderboardDisplayTypeTimeMilliSeconds:
		return "TimeMilliSeconds"
	}
	return fmt.Sprintf("ELeaderboardDisplayType(%d)", int32(d))
}

// EServerType is the category of a server in the server directory.
type EServerType int32

const (
	EServerTypeInvalid    EServerType = -1
	EServerTypeShell      EServerType = 0
	EServerTypeGM         EServerType = 1
	EServerTypeAM         EServerType = 3
	EServerTypeBS         EServerType = 4
	EServerTypeVS         EServerType = 5
	EServerTypeATS        EServerType = 6
	EServerTypeCM         EServerType = 7
	EServerTypeFBS        EServerType = 8
	EServerTypeBoxMonitor EServerType = 9
	EServerTypeSS         EServerType = 10
	EServerTypeDRMS       EServerType = 11
	EServerTypeConsole    EServerType = 13
	EServerTypeClient     EServerType = 15
	EServerTypeDP         EServerType = 17
	EServerTypeWG         EServerType = 18
	EServerTypeSM         EServerType = 19
	EServerTypeSLC        EServerType = 20
	EServerTypeUFS        EServerType = 21
)

var eServerTypeNames = map[EServerType]string{
	EServerTypeInvalid:    "Invalid",
	EServerTypeShell:      "Shell",
	EServerTypeGM:         "GM",
	EServerTypeAM:         "AM",
	EServerTypeBS:         "BS",
	EServerTypeVS:         "VS",
	EServerTypeATS:        "ATS",
	EServerTypeCM:         "CM",
	EServerTypeFBS:        "FBS",
	EServerTypeBoxMonitor: "BoxMonitor",
	EServerTypeSS:         "SS",
	EServerTypeDRMS:       "DRMS",
	EServerTypeConsole:    "Console",
	EServerTypeClient:     "Client",
	EServerTypeDP:         "DP",
	EServerTypeWG:         "WG",
	EServerTypeSM:         "SM",
	EServerTypeSLC:        "SLC",
	EServerTypeUFS:        "UFS",
}

func (s EServerType) String() string {
	if name, ok := eServerTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("EServerType(%d)", int32(s))
}
