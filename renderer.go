// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
)

type Renderer interface {
	// Prompt asks the user for input. It must be visible before the caller
	// blocks reading.
	Prompt(msg string)
	// List displays the current contents of l.
	List(l *IntList)
	// Message prints a line of text, such as a header before a result.
	Message(msg string)
	// Warn prints a non-fatal problem with the input.
	Warn(msg string)
}

type termRenderer struct {
	term *Term
}

func NewTermRenderer(term *Term) *termRenderer {
	return &termRenderer{term: term}
}

func (r *termRenderer) Prompt(msg string) {
	r.term.Attr(AttrBold)
	r.term.WriteString(msg)
	r.term.Attr()
	r.term.WriteByte('\n')
	r.term.Flush()
}

func (r *termRenderer) List(l *IntList) {
	r.term.Attr(AttrGreen)
	r.term.WriteString("List:")
	r.term.Attr()
	r.term.WriteByte(' ')
	for _, v := range l.Values() {
		r.term.WriteString(strconv.Itoa(v))
		r.term.WriteByte(' ')
	}
	r.term.WriteByte('\n')
	r.term.Flush()
}

func (r *termRenderer) Message(msg string) {
	fmt.Fprintf(r.term, "%s\n", msg)
	r.term.Flush()
}

func (r *termRenderer) Warn(msg string) {
	r.term.Attr(AttrYellow)
	fmt.Fprintf(r.term, "%s\n", msg)
	r.term.Attr()
	r.term.Flush()
}
