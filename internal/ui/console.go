package ui

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Console is a terminal UI reading answers line by line.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole constructs a Console.
//
// Precondition: in and out must be non-nil.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Notify prints each message on its own line.
func (c *Console) Notify(messages []string) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintln(c.out)
	for _, msg := range messages {
		fmt.Fprintf(c.out, "  ! %s\n", msg)
	}
	fmt.Fprintln(c.out)
}

// Confirm asks until the answer matches one of the options
// (case-insensitively); it blocks for as long as that takes.
func (c *Console) Confirm(question string, options []string) string {
	for {
		fmt.Fprintf(c.out, "%s [%s]: ", question, strings.Join(options, "/"))
		line, err := c.in.ReadString('\n')
		if err != nil {
			// Input closed under us; take the last option as the safe,
			// non-mutating default.
			return options[len(options)-1]
		}
		answer := strings.TrimSpace(line)
		for _, opt := range options {
			if strings.EqualFold(answer, opt) {
				return opt
			}
		}
	}
}

// ShowComparison renders both objects as indented JSON and asks whether
// they are the same.
func (c *Console) ShowComparison(title, leftLabel string, left any, rightLabel string, right any) bool {
	fmt.Fprintf(c.out, "\n%s\n", title)
	c.dump(leftLabel, left)
	c.dump(rightLabel, right)
	return c.Confirm("Treat these as the same item?", []string{"yes", "no"}) == "yes"
}

func (c *Console) dump(label string, obj any) {
	fmt.Fprintf(c.out, "--- %s ---\n", label)
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		fmt.Fprintf(c.out, "%v\n", obj)
		return
	}
	fmt.Fprintf(c.out, "%s\n", data)
}
