package catalog

import (
	"cmp"
	"slices"
)

// All rankings break ties on name, then artist, so equal play counts
// always come out in the same order.

// TopSongs returns at most limit songs, most played first.
// A limit of zero or less returns an empty slice.
func (c *Catalog) TopSongs(limit int) []Song {
	if limit <= 0 {
		return []Song{}
	}
	songs := c.Songs()
	sortByPlays(songs, (*Song).TotalPlays)
	if len(songs) > limit {
		songs = songs[:limit]
	}
	return songs
}

// TopSongsByArtist returns the names of an artist's songs, most played first.
func (c *Catalog) TopSongsByArtist(artist string) []string {
	songs := c.snapshots(c.byArtist[artist])
	sortByPlays(songs, (*Song).TotalPlays)

	names := make([]string, 0, len(songs))
	for i := range songs {
		names = append(names, songs[i].Name())
	}
	return names
}

// TopSongsByDate returns the songs played on d, ordered by how often they
// were played that day. Songs without a play on d are left out.
func (c *Catalog) TopSongsByDate(d Date) []Song {
	songs := make([]Song, 0)
	for _, k := range c.order {
		if s := c.songs[k]; s.PlaysOn(d) > 0 {
			songs = append(songs, s.snapshot())
		}
	}
	sortByPlays(songs, func(s *Song) int { return s.PlaysOn(d) })
	return songs
}

// SongsNotPlayedRecently returns the songs with no play in the last days
// days, today included: today, today-1, ..., today-(days-1). Songs that
// were never played are included. Results keep insertion order.
//
// A window of zero or fewer days contains no date, so every song matches.
func (c *Catalog) SongsNotPlayedRecently(today Date, days int) []Song {
	songs := make([]Song, 0)
	for _, k := range c.order {
		if s := c.songs[k]; !s.playedWithin(today, days) {
			songs = append(songs, s.snapshot())
		}
	}
	return songs
}

// sortByPlays orders songs by count descending, then name and artist ascending.
func sortByPlays(songs []Song, count func(*Song) int) {
	slices.SortFunc(songs, func(a, b Song) int {
		if c := cmp.Compare(count(&b), count(&a)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.key.Name, b.key.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.key.Artist, b.key.Artist)
	})
}
