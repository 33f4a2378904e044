package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nmartinez-uy/flightdesk/internal/domain"
)

// readLine returns the next trimmed input line. ok is false once the input
// stream is exhausted, which ends the menu loop.
func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		c.eof = true
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) promptText(msg string) (string, bool) {
	for {
		fmt.Fprint(c.out, msg)
		line, ok := c.readLine()
		if !ok {
			return "", false
		}
		if line == "" {
			fmt.Fprintln(c.out, "Error: the field cannot be empty.")
			continue
		}
		return line, true
	}
}

func (c *CLI) promptInt(msg string) (int, bool) {
	for {
		line, ok := c.promptText(msg)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Error: enter a valid whole number.")
			continue
		}
		return n, true
	}
}

func (c *CLI) promptFloat(msg string) (float64, bool) {
	for {
		line, ok := c.promptText(msg)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Error: enter a valid number.")
			continue
		}
		return f, true
	}
}

func (c *CLI) promptDate(msg string) (time.Time, bool) {
	for {
		line, ok := c.promptText(msg)
		if !ok {
			return time.Time{}, false
		}
		t, err := time.Parse(domain.DateTimeLayout, line)
		if err != nil {
			fmt.Fprintln(c.out, "Error: invalid date format. Use DD/MM/YYYY HH:MM (e.g. 25/12/2026 14:30).")
			continue
		}
		return t, true
	}
}
