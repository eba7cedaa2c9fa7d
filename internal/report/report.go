// Package report renders catalog query results as aligned, styled text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/playtally/internal/catalog"
)

const (
	rankWidth = 5
	minWidth  = 8

	gradientFrom = lipgloss.Color("#4ECDC4")
	gradientTo   = lipgloss.Color("#FF6B6B")
)

var (
	rankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	nameStyle  = lipgloss.NewStyle().Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Printer writes report sections to w. Song names and artists are cut to
// width display cells.
type Printer struct {
	w     io.Writer
	width int
}

// NewPrinter returns a Printer writing to w. Widths below 8 are raised to 8.
func NewPrinter(w io.Writer, width int) *Printer {
	return &Printer{w: w, width: max(width, minWidth)}
}

// Names prints a titled list of song names, one per line.
func (p *Printer) Names(title string, names []string) error {
	var b strings.Builder
	p.heading(&b, title)
	if len(names) == 0 {
		p.none(&b)
	}
	for i, name := range names {
		b.WriteString(p.rank(i))
		b.WriteString(nameStyle.Render(Truncate(name, p.width)))
		b.WriteByte('\n')
	}
	return p.flush(&b)
}

// TopSongs prints ranked songs with their total play counts.
func (p *Printer) TopSongs(title string, songs []catalog.Song) error {
	return p.songs(title, songs, func(s *catalog.Song) string {
		return Plays(s.TotalPlays())
	})
}

// DatePlays prints ranked songs with their play counts on d.
func (p *Printer) DatePlays(title string, d catalog.Date, songs []catalog.Song) error {
	return p.songs(title, songs, func(s *catalog.Song) string {
		return Plays(s.PlaysOn(d)) + " on " + d.String()
	})
}

// NotPlayed prints songs with the day they were last played, if ever.
func (p *Printer) NotPlayed(title string, songs []catalog.Song) error {
	return p.songs(title, songs, func(s *catalog.Song) string {
		last, ok := s.LastPlayed()
		if !ok {
			return "never played"
		}
		return "last played " + last.String()
	})
}

// Error prints a one-line error message.
func (p *Printer) Error(msg string) error {
	style := lipgloss.NewStyle().Foreground(gradientTo)
	_, err := fmt.Fprintln(p.w, style.Render(Sanitize(msg)))
	return err
}

// Plays formats a play count, e.g. "1 play" or "1,024 plays".
func Plays(n int) string {
	if n == 1 {
		return "1 play"
	}
	return humanize.Comma(int64(n)) + " plays"
}

func (p *Printer) songs(title string, songs []catalog.Song, detail func(*catalog.Song) string) error {
	var b strings.Builder
	p.heading(&b, title)
	if len(songs) == 0 {
		p.none(&b)
	}
	for i := range songs {
		s := &songs[i]
		b.WriteString(p.rank(i))
		b.WriteString(nameStyle.Render(TruncateAndPad(s.Name(), p.width)))
		b.WriteString("  ")
		b.WriteString(TruncateAndPad(s.Artist(), p.width))
		b.WriteString("  ")
		b.WriteString(countStyle.Render(detail(s)))
		b.WriteByte('\n')
	}
	return p.flush(&b)
}

func (p *Printer) heading(b *strings.Builder, title string) {
	title = Sanitize(title)
	b.WriteString(ApplyBoldGradient(title, gradientFrom, gradientTo))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(Separator(lipgloss.Width(title))))
	b.WriteByte('\n')
}

func (p *Printer) rank(i int) string {
	return rankStyle.Render(Pad(humanize.Ordinal(i+1), rankWidth))
}

func (p *Printer) none(b *strings.Builder) {
	b.WriteString(dimStyle.Render(Pad("", rankWidth) + "(none)"))
	b.WriteByte('\n')
}

func (p *Printer) flush(b *strings.Builder) error {
	b.WriteByte('\n')
	_, err := io.WriteString(p.w, b.String())
	return err
}
