package catalog

import "errors"

var (
	// ErrDuplicateSong is returned when adding a song whose name and artist
	// are already in the catalog.
	ErrDuplicateSong = errors.New("already exists")

	// ErrSongNotFound is returned when a name and artist pair was never added.
	ErrSongNotFound = errors.New("not found")
)

// SongError records the song an operation failed on.
type SongError struct {
	Op  string
	Key Key
	Err error
}

func (e *SongError) Error() string {
	return "song " + e.Key.String() + " " + e.Err.Error()
}

func (e *SongError) Unwrap() error {
	return e.Err
}

func songError(op string, key Key, err error) error {
	return &SongError{Op: op, Key: key, Err: err}
}
