package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/techcomputer/portal/core"
)

// promptConfirmer asks on the terminal before irreversible actions; anything
// but an explicit yes declines.
type promptConfirmer struct {
	in *bufio.Reader
}

var _ core.Confirmer = (*promptConfirmer)(nil)

func newPromptConfirmer(in io.Reader) *promptConfirmer {
	return &promptConfirmer{in: bufio.NewReader(in)}
}

func (c *promptConfirmer) Confirm(msg string) bool {
	fmt.Printf("%s [y/N]: ", msg)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
