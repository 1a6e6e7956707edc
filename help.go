package etched

import (
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

const (
	valuePlaceholder = " <value>"
	descriptionGap   = "    "

	// minWrapWidth is the narrowest description column that will be wrapped.
	minWrapWidth = 20
)

// HelpText renders one line per option in declaration order.
//
// Each line has the short spelling, a ", " separator if both spellings are present, the long spelling,
// a " <value>" placeholder for options that aren't flags, and the description if there is one.
func HelpText(set *OptionSet) string {
	return renderHelp(set, 0)
}

// RenderHelp writes [HelpText] to w.
// When w is a terminal, long descriptions are wrapped to the terminal's width, with continuation lines aligned under the description.
func RenderHelp(w io.Writer, set *OptionSet) error {
	_, err := io.WriteString(w, renderHelp(set, terminalWidth(w)))
	return err
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func renderHelp(set *OptionSet, width int) string {
	var buf strings.Builder
	for opt := range set.All() {
		buf.WriteString(helpLine(opt, width))
	}
	return buf.String()
}

func helpLine(opt Option, width int) string {
	var line strings.Builder
	short, long := opt.Short(), opt.Long()
	if len(short) == 0 && len(long) == 0 {
		return ""
	}
	line.WriteString(short)
	if len(short) > 0 && len(long) > 0 {
		line.WriteString(", ")
	}
	line.WriteString(long)
	if !opt.IsFlag() {
		line.WriteString(valuePlaceholder)
	}
	desc := opt.Description()
	if len(desc) == 0 {
		line.WriteString("\n")
		return line.String()
	}
	line.WriteString(descriptionGap)
	indent := line.Len()
	wrapped := wrapWords(desc, width-indent)
	line.WriteString(wrapped[0])
	line.WriteString("\n")
	for _, cont := range wrapped[1:] {
		line.WriteString(strings.Repeat(" ", indent))
		line.WriteString(cont)
		line.WriteString("\n")
	}
	return line.String()
}

// wrapWords splits text into lines no longer than width where possible.
// Text is returned as a single line if width is too narrow to be useful.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if width < minWrapWidth || len(text) <= width || len(words) == 0 {
		return []string{text}
	}
	var (
		lines   []string
		current strings.Builder
	)
	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
