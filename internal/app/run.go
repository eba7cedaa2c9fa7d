// Package app runs the demo sequence: load songs into a catalog, record
// plays, then print every ranking query.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/llehouerou/playtally/internal/catalog"
	"github.com/llehouerou/playtally/internal/config"
	"github.com/llehouerou/playtally/internal/errmsg"
	"github.com/llehouerou/playtally/internal/report"
)

// Options configures a Run.
type Options struct {
	Config *config.Config
	Today  catalog.Date

	// SkipInput disables reading the demo number from Stdin.
	SkipInput bool

	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
}

// Run executes the demo against a fresh catalog and returns the catalog so
// callers can inspect it. The first catalog error stops the sequence; it is
// returned wrapped in an *errmsg.Error.
func Run(ctx context.Context, opts Options) (catalog.Store, error) {
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}

	store := catalog.NewSynchronized(catalog.New())
	r := &runner{
		store:  store,
		opts:   opts,
		log:    opts.Logger,
		report: opts.Config.GetReportConfig(),
	}
	r.printer = report.NewPrinter(opts.Stdout, r.report.Width)

	steps := []func() error{
		r.loadSongs,
		r.loadPlays,
		r.printArtistSongs,
		r.printTopSongs,
		r.printTopByArtist,
		r.readNumber,
		r.printToday,
		r.printNotPlayed,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return store, err
		}
		if err := step(); err != nil {
			return store, err
		}
	}
	return store, nil
}

type runner struct {
	store   catalog.Store
	opts    Options
	log     *slog.Logger
	report  config.ReportConfig
	printer *report.Printer
}

func (r *runner) loadSongs() error {
	songs := r.opts.Config.GetSongs()
	for _, s := range songs {
		if err := r.store.AddSong(s.Name, s.Artist); err != nil {
			return errmsg.Wrap(errmsg.OpSongAdd, err)
		}
	}
	for _, s := range songs {
		for range s.Plays {
			if err := r.store.PlaySong(s.Name, s.Artist, r.opts.Today); err != nil {
				return errmsg.Wrap(errmsg.OpSongPlay, err)
			}
		}
	}
	r.log.Info("catalog loaded", "songs", r.store.Len(), "artists", len(r.store.Artists()))
	return nil
}

func (r *runner) loadPlays() error {
	for _, p := range r.opts.Config.Plays {
		d := r.opts.Today
		if p.Date != "" {
			var err error
			if d, err = catalog.ParseDate(p.Date); err != nil {
				return errmsg.Wrap(errmsg.OpSongPlay, err)
			}
		}
		for range max(p.Times, 1) {
			if err := r.store.PlaySong(p.Name, p.Artist, d); err != nil {
				return errmsg.Wrap(errmsg.OpSongPlay, err)
			}
		}
		r.log.Debug("plays recorded", "song", p.Name, "artist", p.Artist, "date", d, "times", p.Times)
	}
	return nil
}

// artist returns the artist used by the per-artist sections.
func (r *runner) artist() string {
	if r.report.Artist != "" {
		return r.report.Artist
	}
	if artists := r.store.Artists(); len(artists) > 0 {
		return artists[0]
	}
	return ""
}

func (r *runner) printArtistSongs() error {
	artist := r.artist()
	return r.write(r.printer.Names("Songs of "+artist, r.store.SongsByArtist(artist)))
}

func (r *runner) printTopSongs() error {
	limit := r.report.TopLimit
	return r.write(r.printer.TopSongs(fmt.Sprintf("Top %d songs overall", limit), r.store.TopSongs(limit)))
}

func (r *runner) printTopByArtist() error {
	artist := r.artist()
	return r.write(r.printer.Names("Top songs of "+artist, r.store.TopSongsByArtist(artist)))
}

// readNumber reads one integer from Stdin. The value is only logged.
func (r *runner) readNumber() error {
	if r.opts.SkipInput || r.opts.Stdin == nil {
		return nil
	}
	var n int
	if _, err := fmt.Fscan(r.opts.Stdin, &n); err != nil {
		return errmsg.Wrap(errmsg.OpInputRead, err)
	}
	r.log.Debug("read demo number", "value", n)
	return nil
}

func (r *runner) printToday() error {
	today := r.opts.Today
	return r.write(r.printer.DatePlays("Top songs played today", today, r.store.TopSongsByDate(today)))
}

func (r *runner) printNotPlayed() error {
	days := r.report.RecentDays
	title := fmt.Sprintf("Songs not played in the last %d days", days)
	if days == 1 {
		title = "Songs not played today"
	}
	return r.write(r.printer.NotPlayed(title, r.store.SongsNotPlayedRecently(r.opts.Today, days)))
}

func (r *runner) write(err error) error {
	return errmsg.Wrap(errmsg.OpReportWrite, err)
}
