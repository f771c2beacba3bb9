package views

import (
	"fmt"
	"io"
)

// Dialog content kinds.
const (
	DialogGenre    = "genre"
	DialogDirector = "director"
	DialogMovie    = "movie"
)

// DialogContent is the data block a dialog renders. Unused fields stay empty.
type DialogContent struct {
	Kind      string
	Title     string
	Content   string
	BirthDate string
	DeathYear string
	ImageURL  string
}

// Dialog renders genre, director, and movie-details blocks to the terminal.
type Dialog struct {
	out io.Writer
}

func NewDialog(out io.Writer) *Dialog {
	return &Dialog{out: out}
}

// Open renders one content block.
func (d *Dialog) Open(content DialogContent) {
	fmt.Fprintf(d.out, "--- %s: %s ---\n", content.Kind, content.Title)
	fmt.Fprintln(d.out, content.Content)
	if content.BirthDate != "" {
		fmt.Fprintf(d.out, "Born: %s\n", content.BirthDate)
	}
	if content.DeathYear != "" {
		fmt.Fprintf(d.out, "Died: %s\n", content.DeathYear)
	}
	if content.ImageURL != "" {
		fmt.Fprintf(d.out, "Poster: %s\n", content.ImageURL)
	}
}
