// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Term buffers output for w. Attributes are only emitted when color is set.
type Term struct {
	bytes.Buffer
	w     io.Writer
	color bool
}

type TermAttr int

var (
	AttrBold   TermAttr = 1
	AttrGreen  TermAttr = 32
	AttrYellow TermAttr = 33
)

// NewTerm returns a Term writing to stdout, with color enabled if stdout is a
// terminal.
func NewTerm() *Term {
	return &Term{
		w:     os.Stdout,
		color: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (t *Term) Attr(attrs ...TermAttr) {
	if !t.color {
		return
	}
	t.WriteString("\033[0")
	for _, attr := range attrs {
		fmt.Fprintf(t, ";%d", attr)
	}
	t.WriteByte('m')
}

func (t *Term) Flush() error {
	_, err := t.w.Write(t.Bytes())
	t.Reset()
	return err
}
