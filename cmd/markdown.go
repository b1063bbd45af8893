package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering is not possible (e.g. output is not a tty).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(md)
}
