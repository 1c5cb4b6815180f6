package easysteam

import (
	"fmt"
	"github.com/spf13/cast"
	"strconv"
)

// JobID correlates a response with the request that caused it.
type JobID uint64

// InvalidJobID is carried by callbacks which are not request-correlated,
// such as connection lifecycle callbacks.
const InvalidJobID JobID = ^JobID(0)

// NewJobID coerces an opaque correlation identifier handed over by the upstream registry.
// Accepts any integer type, a pointer to one, or a decimal string.
func NewJobID(v interface{}) (JobID, error) {
	id, err := cast.ToUint64E(v)
	if err != nil {
		return InvalidJobID, fmt.Errorf("invalid job id %v(%T): %w", v, v, err)
	}
	return JobID(id), nil
}

// IsValid reports whether the id correlates to a request.
func (j JobID) IsValid() bool {
	return j != InvalidJobID
}

func (j JobID) String() string {
	if !j.IsValid() {
		return "Invalid"
	}
	return strconv.FormatUint(uint64(j), 10)
}

// EAccountType is the account type part of a SteamID.
type EAccountType uint8

const (
	EAccountTypeInvalid        EAccountType = 0
	EAccountTypeIndividual     EAccountType = 1
	EAccountTypeMultiseat      EAccountType = 2
	EAccountTypeGameServer     EAccountType = 3
	EAccountTypeAnonGameServer EAccountType = 4
	EAccountTypePending        EAccountType = 5
	EAccountTypeContentServer  EAccountType = 6
	EAccountTypeClan           EAccountType = 7
	EAccountTypeChat           EAccountType = 8
	EAccountTypeConsoleUser    EAccountType = 9
	EAccountTypeAnonUser       EAccountType = 10
)

var accountTypeChars = map[EAccountType]byte{
	EAccountTypeInvalid:        'I',
	EAccountTypeIndividual:     'U',
	EAccountTypeMultiseat:      'M',
	EAccountTypeGameServer:     'G',
	EAccountTypeAnonGameServer: 'A',
	EAccountTypePending:        'P',
	EAccountTypeContentServer:  'C',
	EAccountTypeClan:           'g',
	EAccountTypeChat:           'T',
	EAccountTypeAnonUser:       'a',
}

// desktopInstance is the instance of a regular desktop user.
const desktopInstance = 1

// SteamID is the 64-bit identifier of an account.
// Layout, from the most significant bits:
// 	universe: 8 bits
// 	account type: 4 bits
// 	instance: 20 bits
// 	account id: 32 bits
type SteamID uint64

// AccountID returns the low 32 bits of the id.
func (s SteamID) AccountID() uint32 {
	return uint32(s)
}

// Instance returns the account instance.
func (s SteamID) Instance() uint32 {
	return uint32(s>>32) & 0xFFFFF
}

// AccountType returns the account type.
func (s SteamID) AccountType() EAccountType {
	return EAccountType(s>>52) & 0xF
}

// Universe returns the universe the account belongs to.
func (s SteamID) Universe() uint8 {
	return uint8(s >> 56)
}

// IsValid reports whether the id has a known account type in a non-zero universe.
func (s SteamID) IsValid() bool {
	t := s.AccountType()
	if t == EAccountTypeInvalid || t > EAccountTypeAnonUser {
		return false
	}
	if s.Universe() == 0 {
		return false
	}
	if t == EAccountTypeIndividual && (s.AccountID() == 0 || s.Instance() > 4) {
		return false
	}
	return true
}

// String renders the id in Steam3 form, e.g. [U:1:12345].
func (s SteamID) String() string {
	t := s.AccountType()
	c, ok := accountTypeChars[t]
	if !ok {
		c = 'i'
	}
	switch {
	case t == EAccountTypeAnonGameServer,
		t == EAccountTypeIndividual && s.Instance() != desktopInstance:
		return fmt.Sprintf("[%c:%d:%d:%d]", c, s.Universe(), s.AccountID(), s.Instance())
	}
	return fmt.Sprintf("[%c:%d:%d]", c, s.Universe(), s.AccountID())
}

// UGCHandle identifies a piece of user generated content.
type UGCHandle uint64

// InvalidUGCHandle is used when no content is attached.
const InvalidUGCHandle UGCHandle = ^UGCHandle(0)

// IsValid reports whether content is attached.
func (u UGCHandle) IsValid() bool {
	return u != InvalidUGCHandle
}

func (u UGCHandle) String() string {
	return strconv.FormatUint(uint64(u), 10)
}
