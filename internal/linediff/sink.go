package linediff

import (
	"errors"
	"fmt"
	"os"
)

// ErrWriteFailure is wrapped by every error returned from a Sink.
var ErrWriteFailure = errors.New("write failure")

// Sink receives one side's preprocessed text.
type Sink interface {
	WritePreprocessed(text string) error
}

// FileSink writes preprocessed text to Path, creating or truncating it.
type FileSink struct {
	Path string
}

func (s FileSink) WritePreprocessed(text string) error {
	if err := os.WriteFile(s.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	return nil
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(text string) error

func (f SinkFunc) WritePreprocessed(text string) error {
	if err := f(text); err != nil {
		if errors.Is(err, ErrWriteFailure) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	return nil
}
