package bitflag

import "github.com/pkg/errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateName   = errors.New("duplicate flag name")
	ErrUnknownFlag     = errors.New("unknown flag")
	// returned by Decode and UnmarshalBinary for truncated or inconsistent input
	ErrMalformedRecord = errors.New("malformed flag set record")
)
