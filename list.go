// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"
)

// IntList is an ordered sequence of integers. Duplicates are allowed. The zero
// value is an empty list ready to use.
//
// Positions accepted by the delete methods are 1-based. Out-of-range positions
// are ignored rather than reported.
type IntList struct {
	o []int
}

// Append adds v as the last element.
func (l *IntList) Append(v int) {
	l.o = append(l.o, v)
}

// DeleteAt removes the element at 1-based position pos. It does nothing if pos
// is not in [1, Len()].
func (l *IntList) DeleteAt(pos int) {
	if pos < 1 || pos > len(l.o) {
		return
	}
	l.o = slices.Delete(l.o, pos-1, pos)
}

// DeleteAtPositions removes the elements at each of the 1-based positions.
// Every position refers to the list as it was before the call: positions are
// deduplicated and applied from highest to lowest so earlier removals don't
// shift later ones. Non-positive and out-of-range positions are ignored.
func (l *IntList) DeleteAtPositions(positions []int) {
	ps := make([]int, 0, len(positions))
	for _, p := range positions {
		if p > 0 {
			ps = append(ps, p)
		}
	}
	slices.Sort(ps)
	ps = slices.Compact(ps)
	for i := len(ps) - 1; i >= 0; i-- {
		l.DeleteAt(ps[i])
	}
}

// DeleteIn removes every element whose value appears anywhere in other. other
// is not modified. Passing l itself empties l.
func (l *IntList) DeleteIn(other *IntList) {
	if other == nil || len(other.o) == 0 {
		return
	}
	// Snapshot other before compacting, since other may be l.
	drop := mapset.NewThreadUnsafeSet(other.o...)
	w := 0
	for _, v := range l.o {
		if drop.Contains(v) {
			continue
		}
		l.o[w] = v
		w++
	}
	l.o = l.o[:w]
}

func (l *IntList) Len() int {
	return len(l.o)
}

// Clear removes all elements.
func (l *IntList) Clear() {
	l.o = nil
}

// Values returns the elements front to back. The result is a copy and may be
// retained or modified by the caller.
func (l *IntList) Values() []int {
	return slices.Clone(l.o)
}

func (l *IntList) String() string {
	var b strings.Builder
	for i, v := range l.o {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
