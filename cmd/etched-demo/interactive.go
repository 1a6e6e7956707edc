package main

import (
	"bufio"
	"github.com/fatih/color"
	"io"
	"slices"
	"strings"
)

const ResetCommand = "reset" // ResetCommand is used in interactive mode to restore every option to its starting value.

var InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.

// interactiveLoop parses each line read from inR as another set of arguments, and reports the result.
// Values carry over from one line to the next until the ResetCommand is entered.
//
// This loop may be interrupted with one of the [InteractiveQuitCommands], or by the end of input.
func (d *demo) interactiveLoop(inR io.Reader) error {
	scanner := bufio.NewScanner(inR)
	p := d.out
	p.Printf(`Running '%s' interactively. Enter %s to exit.
Values carry over between lines, use %s to start over.
`, programName, strings.Join(InteractiveQuitCommands, " or "), ResetCommand)
	for {
		p.Printf("%s> ", programName)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if slices.Contains(InteractiveQuitCommands, strings.ToLower(line)) {
			return nil
		}
		if strings.ToLower(line) == ResetCommand {
			d.parser.Options().Reset()
			p.Println("Options reset")
			continue
		}
		res, err := d.parser.ParseLine(line)
		if err == nil {
			err = d.respond(res)
		}
		if err != nil {
			p.Println(color.RedString("Error: %v", err))
		}
	}
}
