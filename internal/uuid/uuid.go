package uuid

import (
	"errors"
	"fmt"

	google_uuid "github.com/google/uuid"
)

// ErrInvalid is returned for any identifier that is not a well-formed UUID.
var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// Parse validates that s is a well-formed identifier and returns it.
//
// No lookup happens here, callers use it to reject malformed IDs before
// touching the database.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	return UUID{parsed}, nil
}

// UnmarshalParam implements gin's BindUnmarshaler so that
// URI and query parameters can be bound directly to a UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
