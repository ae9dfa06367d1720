package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const boxWidth = 41

const banner = `|=========================================|
|      Please select an option below      |
|_________________________________________|
|    Generate a new word search----(g)    |
|    Print out your word search----(p)    |
|    Show the solution words-------(s)    |
|    Quit the program--------------(q)    |
|                                         |
|SAVE OPTIONS:____________________________|
|    Save word search to file------(w)    |
|    Save solution to a file-------(x)    |
|_________________________________________|
`

const sourceMenu = `| How would you like to select the words? |
|-----------------------------------------|
|    Input words manually----------(m)    |
|    Read from a file--------------(f)    |
|_________________________________________|
`

const intro = `|_________________________________________|
|  Welcome to my word search generator!   |
|  This program will allow you to         |
|  generate your own word search puzzle.  |
`

var rule = "|" + strings.Repeat("_", boxWidth) + "|"

type tone int

const (
	toneInfo tone = iota
	toneOK
	toneErr
)

type printer struct {
	out    io.Writer
	center lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
}

func newPrinter(out io.Writer, color bool) *printer {
	r := lipgloss.NewRenderer(out)
	p := &printer{
		out:    out,
		center: r.NewStyle().Width(boxWidth).Align(lipgloss.Center),
		ok:     r.NewStyle(),
		err:    r.NewStyle(),
	}
	if color {
		p.ok = p.ok.Foreground(lipgloss.Color("42"))
		p.err = p.err.Foreground(lipgloss.Color("203")).Bold(true)
	}
	return p
}

func (p *printer) raw(s string) {
	fmt.Fprint(p.out, s)
}

// line prints text centred inside the box borders, wrapping long text.
func (p *printer) line(text string, t tone) {
	for _, body := range strings.Split(p.center.Render(text), "\n") {
		switch t {
		case toneOK:
			body = p.ok.Render(body)
		case toneErr:
			body = p.err.Render(body)
		}
		fmt.Fprintf(p.out, "|%s|\n", body)
	}
}

// notice prints a boxed message followed by the closing rule.
func (p *printer) notice(text string, t tone) {
	p.line(text, t)
	fmt.Fprintln(p.out, rule)
}
