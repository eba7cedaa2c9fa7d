package catalog

import "sync"

// Synchronized guards a Catalog with a read/write lock so it can be shared
// between goroutines. Writes are exclusive, queries run concurrently.
type Synchronized struct {
	mu      sync.RWMutex
	catalog *Catalog
}

// NewSynchronized wraps c. The caller must not use c directly afterwards.
func NewSynchronized(c *Catalog) *Synchronized {
	if c == nil {
		c = New()
	}
	return &Synchronized{catalog: c}
}

// AddSong adds a song under the write lock.
func (s *Synchronized) AddSong(name, artist string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.AddSong(name, artist)
}

// PlaySong records a play under the write lock.
func (s *Synchronized) PlaySong(name, artist string, d Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.PlaySong(name, artist, d)
}

// Song returns a snapshot of one song.
func (s *Synchronized) Song(name, artist string) (Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Song(name, artist)
}

// Songs returns snapshots of all songs in insertion order.
func (s *Synchronized) Songs() []Song {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Songs()
}

// Artists returns the artists in first-seen order.
func (s *Synchronized) Artists() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Artists()
}

// Len returns the number of songs.
func (s *Synchronized) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Len()
}

// SongsByArtist returns an artist's song names in insertion order.
func (s *Synchronized) SongsByArtist(artist string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.SongsByArtist(artist)
}

// TopSongs returns at most limit songs, most played first.
func (s *Synchronized) TopSongs(limit int) []Song {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.TopSongs(limit)
}

// TopSongsByArtist returns an artist's song names, most played first.
func (s *Synchronized) TopSongsByArtist(artist string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.TopSongsByArtist(artist)
}

// TopSongsByDate returns the songs played on d, most played first.
func (s *Synchronized) TopSongsByDate(d Date) []Song {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.TopSongsByDate(d)
}

// SongsNotPlayedRecently returns the songs with no play in the last days days.
func (s *Synchronized) SongsNotPlayedRecently(today Date, days int) []Song {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.SongsNotPlayedRecently(today, days)
}
