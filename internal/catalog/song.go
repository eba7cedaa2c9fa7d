package catalog

import (
	"fmt"
	"maps"
	"slices"
)

// Key identifies a song. The same name by two artists is two songs.
type Key struct {
	Name   string
	Artist string
}

func (k Key) String() string {
	return fmt.Sprintf("[%s] by [%s]", k.Name, k.Artist)
}

// Song is one track by one artist with its play statistics.
//
// TotalPlays always equals the sum of the per-date counts, and a date is
// only present in the history once it has at least one play.
type Song struct {
	key         Key
	totalPlays  int
	playsByDate map[Date]int
}

// NewSong creates a song with no plays.
func NewSong(name, artist string) *Song {
	return &Song{
		key:         Key{Name: name, Artist: artist},
		playsByDate: make(map[Date]int),
	}
}

// RecordPlay counts one play on the given date. Out-of-range dates such as
// October 32 are counted on the day they normalize to.
func (s *Song) RecordPlay(d Date) {
	if s.playsByDate == nil {
		s.playsByDate = make(map[Date]int)
	}
	s.totalPlays++
	s.playsByDate[d.normalized()]++
}

// Name returns the song title.
func (s *Song) Name() string { return s.key.Name }

// Artist returns the performing artist.
func (s *Song) Artist() string { return s.key.Artist }

// Key returns the (name, artist) pair identifying the song.
func (s *Song) Key() Key { return s.key }

// TotalPlays returns the number of plays across all dates.
func (s *Song) TotalPlays() int { return s.totalPlays }

// PlaysOn returns the play count for d, 0 if the song was not played that day.
func (s *Song) PlaysOn(d Date) int { return s.playsByDate[d.normalized()] }

// PlaysByDate returns a copy of the per-date play counts.
func (s *Song) PlaysByDate() map[Date]int {
	return maps.Clone(s.playsByDate)
}

// Dates returns the days with at least one play, oldest first.
func (s *Song) Dates() []Date {
	dates := slices.Collect(maps.Keys(s.playsByDate))
	slices.SortFunc(dates, compareDates)
	return dates
}

// playedWithin reports whether s has a play in the days-long window ending
// on today. The cost depends on the history size, never on days.
func (s *Song) playedWithin(today Date, days int) bool {
	if days <= 0 {
		return false
	}
	end := today.normalized().dayNumber()
	for d := range s.playsByDate {
		if age := end - d.dayNumber(); age >= 0 && age < int64(days) {
			return true
		}
	}
	return false
}

// LastPlayed returns the most recent day with a play.
// The boolean is false if the song was never played.
func (s *Song) LastPlayed() (Date, bool) {
	var last Date
	found := false
	for d := range s.playsByDate {
		if !found || last.Before(d) {
			last = d
			found = true
		}
	}
	return last, found
}

func (s *Song) String() string {
	return fmt.Sprintf("%q by %s", s.key.Name, s.key.Artist)
}

// snapshot returns a deep copy that shares nothing with s.
func (s *Song) snapshot() Song {
	return Song{
		key:         s.key,
		totalPlays:  s.totalPlays,
		playsByDate: maps.Clone(s.playsByDate),
	}
}

func compareDates(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}
