// Package catalog keeps an in-memory library of songs with their play
// history and answers ranking queries over it.
//
// A Catalog is not safe for concurrent use; wrap it with NewSynchronized
// when several goroutines share one.
package catalog

const (
	opAdd    = "add"
	opPlay   = "play"
	opLookup = "lookup"
)

// Store is the set of catalog operations shared by Catalog and Synchronized.
type Store interface {
	AddSong(name, artist string) error
	PlaySong(name, artist string, d Date) error
	Song(name, artist string) (Song, error)
	Songs() []Song
	Artists() []string
	Len() int
	SongsByArtist(artist string) []string
	TopSongs(limit int) []Song
	TopSongsByArtist(artist string) []string
	TopSongsByDate(d Date) []Song
	SongsNotPlayedRecently(today Date, days int) []Song
}

// Verify implementations at compile time.
var (
	_ Store = (*Catalog)(nil)
	_ Store = (*Synchronized)(nil)
)

// Catalog owns every song and an index of songs per artist.
type Catalog struct {
	songs    map[Key]*Song
	order    []Key            // insertion order of songs
	byArtist map[string][]Key // insertion order per artist
	artists  []string         // first-added order
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		songs:    make(map[Key]*Song),
		byArtist: make(map[string][]Key),
	}
}

// AddSong registers a song. It returns ErrDuplicateSong if the same name
// and artist were already added, leaving the catalog unchanged.
func (c *Catalog) AddSong(name, artist string) error {
	key := Key{Name: name, Artist: artist}
	if _, ok := c.songs[key]; ok {
		return songError(opAdd, key, ErrDuplicateSong)
	}

	c.songs[key] = NewSong(name, artist)
	c.order = append(c.order, key)

	if _, ok := c.byArtist[artist]; !ok {
		c.artists = append(c.artists, artist)
	}
	c.byArtist[artist] = append(c.byArtist[artist], key)
	return nil
}

// PlaySong records one play of a song on d. It returns ErrSongNotFound if
// the song was never added.
func (c *Catalog) PlaySong(name, artist string, d Date) error {
	key := Key{Name: name, Artist: artist}
	song, ok := c.songs[key]
	if !ok {
		return songError(opPlay, key, ErrSongNotFound)
	}
	song.RecordPlay(d)
	return nil
}

// Song returns a snapshot of a single song.
func (c *Catalog) Song(name, artist string) (Song, error) {
	key := Key{Name: name, Artist: artist}
	song, ok := c.songs[key]
	if !ok {
		return Song{}, songError(opLookup, key, ErrSongNotFound)
	}
	return song.snapshot(), nil
}

// Songs returns snapshots of every song in the order they were added.
func (c *Catalog) Songs() []Song {
	return c.snapshots(c.order)
}

// Artists returns each artist once, in the order of their first song.
func (c *Catalog) Artists() []string {
	out := make([]string, len(c.artists))
	copy(out, c.artists)
	return out
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// SongsByArtist returns the names of an artist's songs in the order they
// were added. Unknown artists yield an empty slice.
func (c *Catalog) SongsByArtist(artist string) []string {
	keys := c.byArtist[artist]
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Name)
	}
	return names
}

func (c *Catalog) snapshots(keys []Key) []Song {
	out := make([]Song, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.songs[k].snapshot())
	}
	return out
}
