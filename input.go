// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// intReader reads whitespace-separated integers from a text stream.
type intReader struct {
	sc *bufio.Scanner
}

func newIntReader(r io.Reader) *intReader {
	sc := bufio.NewScanner(r)
	// Numbers can arrive on one very long line when input is piped.
	sc.Buffer(nil, 16<<20)
	sc.Split(bufio.ScanWords)
	return &intReader{sc: sc}
}

// next returns the next token and whether it parsed as an integer. At the end
// of input it returns io.EOF.
func (r *intReader) next() (v int, ok bool, err error) {
	if !r.sc.Scan() {
		err := r.sc.Err()
		if err == nil {
			err = io.EOF
		}
		return 0, false, err
	}
	v, perr := strconv.Atoi(r.sc.Text())
	return v, perr == nil, nil
}

// untilZero reads integers up to the sentinel 0, the first non-numeric token,
// or the end of input. The terminating token is consumed.
func (r *intReader) untilZero() ([]int, error) {
	return r.read(func(v int) bool { return v == 0 })
}

// untilNonNumeric reads integers up to the first non-numeric token or the end
// of input. The terminating token is consumed.
func (r *intReader) untilNonNumeric() ([]int, error) {
	return r.read(func(int) bool { return false })
}

func (r *intReader) read(stop func(v int) bool) ([]int, error) {
	var vs []int
	for {
		v, ok, err := r.next()
		if err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, fmt.Errorf("reading input: %w", err)
		}
		if !ok || stop(v) {
			return vs, nil
		}
		vs = append(vs, v)
	}
}
