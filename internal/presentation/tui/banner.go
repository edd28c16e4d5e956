package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the trnltk banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct{ text, color string }{
		{" _            _ _   _    ", "#818cf8"},
		{"| |_ _ _ _ _ | | |_| |__ ", "#a78bfa"},
		{"|  _| '_| ' \\| |  _| / / ", "#c084fc"},
		{" \\__|_| |_||_|_|\\__|_\\_\\ ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
