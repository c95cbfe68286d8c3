package classify

import (
	"errors"
	"fmt"
)

type Stage string

const (
	StageOpen   Stage = "open"
	StageLoad   Stage = "load"
	StageFile   Stage = "file"
	StageBuffer Stage = "buffer"
)

var (
	ErrInvalidPath     = errors.New("invalid file")
	ErrSnifferOpen     = errors.New("sniffer could not be opened")
	ErrSnifferLoad     = errors.New("sniffer could not load its signature database")
	ErrSnifferClassify = errors.New("sniffer could not classify the input")

	errNoType = errors.New("engine returned no type")
)

// SnifferError reports which step of the signature engine failed.
type SnifferError struct {
	Stage Stage
	Err   error
}

func (e *SnifferError) Error() string {
	return fmt.Sprintf("sniffer %s error: %v", e.Stage, e.Err)
}

func (e *SnifferError) Unwrap() error {
	return e.Err
}

func (e *SnifferError) Is(target error) bool {
	switch target {
	case ErrSnifferOpen:
		return e.Stage == StageOpen
	case ErrSnifferLoad:
		return e.Stage == StageLoad
	case ErrSnifferClassify:
		return e.Stage == StageFile || e.Stage == StageBuffer
	}
	return false
}
