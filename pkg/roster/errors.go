package roster

import (
	"errors"
	"reflect"
)

var (
	// ErrEmptyRoster is returned when a resolving operation needs at
	// least one entry and the roster has none.
	ErrEmptyRoster = errors.New("roster is empty")

	// ErrEmptyMemberList is returned when an entry has no members to
	// resolve from.
	ErrEmptyMemberList = errors.New("member list is empty")

	// ErrEmptyBandName is returned when an entry is added under an
	// empty key.
	ErrEmptyBandName = errors.New("band name is empty")
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
