// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func listOf(vs ...int) *IntList {
	l := new(IntList)
	for _, v := range vs {
		l.Append(v)
	}
	return l
}

func TestAppendKeepsOrder(t *testing.T) {
	l := listOf(5, -1, 5, 0, 7)
	require.Equal(t, []int{5, -1, 5, 0, 7}, l.Values())
	require.Equal(t, 5, l.Len())
}

func TestDeleteAt(t *testing.T) {
	l := listOf(10, 20, 30, 40)
	l.DeleteAt(2)
	require.Equal(t, []int{10, 30, 40}, l.Values())
	l.DeleteAt(2)
	require.Equal(t, []int{10, 40}, l.Values())
	l.DeleteAt(2)
	require.Equal(t, []int{10}, l.Values())
	l.DeleteAt(1)
	require.Empty(t, l.Values())
	require.Equal(t, 0, l.Len())
}

func TestDeleteAtOutOfRange(t *testing.T) {
	l := listOf(1, 2, 3)
	for _, pos := range []int{0, -1, 4, 99} {
		l.DeleteAt(pos)
		require.Equal(t, []int{1, 2, 3}, l.Values(), "DeleteAt(%d)", pos)
	}

	var empty IntList
	empty.DeleteAt(1)
	require.Equal(t, 0, empty.Len())
}

func TestDeleteAtPositions(t *testing.T) {
	for _, tt := range []struct {
		name      string
		positions []int
		want      []int
	}{
		{"ascending", []int{2, 4}, []int{1, 3, 5}},
		{"descending", []int{4, 2}, []int{1, 3, 5}},
		{"duplicates", []int{4, 4, 2}, []int{1, 3, 5}},
		{"non-positive", []int{0, -3, 2, 4}, []int{1, 3, 5}},
		{"out of range", []int{6, 2, 100}, []int{1, 3, 4, 5}},
		{"first and last", []int{5, 1}, []int{2, 3, 4}},
		{"all", []int{3, 1, 5, 2, 4}, nil},
		{"none", nil, []int{1, 2, 3, 4, 5}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(1, 2, 3, 4, 5)
			l.DeleteAtPositions(tt.positions)
			if tt.want == nil {
				require.Empty(t, l.Values())
				return
			}
			require.Equal(t, tt.want, l.Values())
		})
	}
}

func TestDeleteAtPositionsLeavesArgument(t *testing.T) {
	positions := []int{4, 0, 2, 4}
	listOf(1, 2, 3, 4, 5).DeleteAtPositions(positions)
	require.Equal(t, []int{4, 0, 2, 4}, positions)
}

func TestDeleteIn(t *testing.T) {
	l1 := listOf(1, 2, 3, 2, 4)
	l2 := listOf(2, 4)
	l1.DeleteIn(l2)
	require.Equal(t, []int{1, 3}, l1.Values())
	require.Equal(t, []int{2, 4}, l2.Values())
}

func TestDeleteInEdges(t *testing.T) {
	l := listOf(1, 2, 3)
	l.DeleteIn(new(IntList))
	require.Equal(t, []int{1, 2, 3}, l.Values())

	l.DeleteIn(nil)
	require.Equal(t, []int{1, 2, 3}, l.Values())

	l.DeleteIn(listOf(7, 8))
	require.Equal(t, []int{1, 2, 3}, l.Values())

	l.DeleteIn(listOf(3, 3, 1, 2))
	require.Empty(t, l.Values())

	var empty IntList
	empty.DeleteIn(listOf(1))
	require.Equal(t, 0, empty.Len())
}

func TestDeleteInSelf(t *testing.T) {
	l := listOf(4, 4, 5)
	l.DeleteIn(l)
	require.Equal(t, 0, l.Len())
}

func TestClear(t *testing.T) {
	l := listOf(1, 2)
	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.Values())
	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.Values())

	l.Append(9)
	require.Equal(t, []int{9}, l.Values())
}

func TestValuesIsCopy(t *testing.T) {
	l := listOf(1, 2, 3)
	vs := l.Values()
	vs[0] = 100
	require.Equal(t, []int{1, 2, 3}, l.Values())
}

func TestLenMatchesValues(t *testing.T) {
	l := new(IntList)
	check := func() {
		t.Helper()
		require.Equal(t, len(l.Values()), l.Len())
	}
	check()
	for i := 1; i <= 10; i++ {
		l.Append(i % 4)
		check()
	}
	l.DeleteAt(3)
	check()
	l.DeleteAtPositions([]int{1, 1, 20, 5})
	check()
	l.DeleteIn(listOf(0))
	check()
	l.Clear()
	check()
}

func TestString(t *testing.T) {
	require.Equal(t, "", new(IntList).String())
	require.Equal(t, "1 -2 3", listOf(1, -2, 3).String())
}
