package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDescriptor is returned when a reader decodes a payload to nothing.
	ErrNoDescriptor = errors.New("reader returned no descriptor")
	// ErrFinished is returned when files are added after FinishLoading.
	ErrFinished = errors.New("load session already finished")
)

// FileError ties a load failure to the pak file that caused it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
