package models

import "github.com/pkg/errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrStoreOpen          = errors.New("bookmark store could not be opened")
	ErrQuery              = errors.New("bookmark query failed")
	ErrParse              = errors.New("bookmark document is malformed")
	ErrMissingEnvironment = errors.New("required environment variable is not set")
	ErrIO                 = errors.New("output could not be written")
	ErrCanceled           = errors.New("export canceled")
	ErrUnknownFormat      = errors.New("unknown output format")
	ErrUnknownTarget      = errors.New("unknown export target")
)

// ParseTarget converts a target name into a Target
func ParseTarget(s string) (Target, error) {
	for _, t := range Targets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownTarget, "%q", s)
}
