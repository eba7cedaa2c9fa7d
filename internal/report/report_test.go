package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/playtally/internal/catalog"
)

var today = catalog.Date{Year: 2026, Month: time.October, Day: 19}

func demoSongs(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	require.NoError(t, c.AddSong("Song A", "Artist X"))
	require.NoError(t, c.AddSong("Song B", "Artist X"))
	require.NoError(t, c.AddSong("Song C", "Artist Y"))
	require.NoError(t, c.PlaySong("Song A", "Artist X", today))
	require.NoError(t, c.PlaySong("Song A", "Artist X", today))
	require.NoError(t, c.PlaySong("Song B", "Artist X", today.AddDays(-3)))
	return c
}

// plainLines strips styling and trailing spaces from rendered output.
func plainLines(s string) []string {
	lines := strings.Split(strings.TrimRight(ansi.Strip(s), "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestPrinter_Names(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 10)

	require.NoError(t, p.Names("Songs of Artist X", []string{"Song A", "A very long song name"}))

	assert.Equal(t, []string{
		"Songs of Artist X",
		"─────────────────",
		"1st  Song A",
		"2nd  A very ...",
	}, plainLines(buf.String()))
}

func TestPrinter_NamesEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 10)

	require.NoError(t, p.Names("Nobody", nil))

	lines := plainLines(buf.String())
	require.Len(t, lines, 3)
	assert.Equal(t, "     (none)", lines[2])
}

func TestPrinter_TopSongs(t *testing.T) {
	c := demoSongs(t)
	var buf bytes.Buffer
	p := NewPrinter(&buf, 8)

	require.NoError(t, p.TopSongs("Top 2", c.TopSongs(2)))

	assert.Equal(t, []string{
		"Top 2",
		"─────",
		"1st  Song A    Artist X  2 plays",
		"2nd  Song B    Artist X  1 play",
	}, plainLines(buf.String()))
}

func TestPrinter_DatePlays(t *testing.T) {
	c := demoSongs(t)
	var buf bytes.Buffer
	p := NewPrinter(&buf, 8)

	require.NoError(t, p.DatePlays("Today", today, c.TopSongsByDate(today)))

	assert.Equal(t, []string{
		"Today",
		"─────",
		"1st  Song A    Artist X  2 plays on 2026-10-19",
	}, plainLines(buf.String()))
}

func TestPrinter_NotPlayed(t *testing.T) {
	c := demoSongs(t)
	var buf bytes.Buffer
	p := NewPrinter(&buf, 8)

	require.NoError(t, p.NotPlayed("Stale", c.SongsNotPlayedRecently(today, 2)))

	assert.Equal(t, []string{
		"Stale",
		"─────",
		"1st  Song B    Artist X  last played 2026-10-16",
		"2nd  Song C    Artist Y  never played",
	}, plainLines(buf.String()))
}

func TestPrinter_MinimumWidth(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, 0)
	assert.Equal(t, minWidth, p.width)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrinter_WriteError(t *testing.T) {
	p := NewPrinter(failingWriter{}, 10)
	assert.EqualError(t, p.Names("x", []string{"y"}), "disk full")
	assert.EqualError(t, p.Error("boom"), "disk full")
}

func TestApplyBoldGradient(t *testing.T) {
	assert.Empty(t, ApplyBoldGradient("", gradientFrom, gradientTo))
	assert.Equal(t, "Top Songs", ansi.Strip(ApplyBoldGradient("Top Songs", gradientFrom, gradientTo)))
	assert.Equal(t, "é", ansi.Strip(ApplyBoldGradient("é", gradientFrom, gradientTo)))
}

func TestBlendColors(t *testing.T) {
	colors := blendColors(3, gradientFrom, gradientTo)
	require.Len(t, colors, 3)
	assert.Equal(t, "#4ecdc4", colorToHex(colors[0]))
	assert.Equal(t, "#ff6b6b", colorToHex(colors[2]))

	assert.Len(t, blendColors(1, gradientFrom, gradientTo), 1)
	assert.Equal(t, "#808080", colorToHex(toColor(lipgloss.Color("240"))))
}
