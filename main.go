// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	err := main1(NewTermRenderer(NewTerm()), os.Stdin, os.Args[1:])
	switch err := err.(type) {
	case nil:
		return
	case ErrExit:
		os.Exit(int(err))
	default:
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

type ErrExit int

func (e ErrExit) Error() string {
	return fmt.Sprintf("exit code %d", int(e))
}

const (
	modeExcept    = "except"
	modePositions = "positions"
)

type config struct {
	mode    string
	verbose bool
}

func parseFlags(args []string) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("intlist", flag.ContinueOnError)
	fs.StringVar(&cfg.mode, "mode", modeExcept, "`variant` to run: "+modeExcept+" removes elements found in a second list, "+modePositions+" removes elements at given positions")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrExit(0)
		}
		return nil, ErrExit(2)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return nil, ErrExit(2)
	}
	switch cfg.mode {
	case modeExcept, modePositions:
	default:
		fmt.Fprintf(fs.Output(), "unknown mode %q\n", cfg.mode)
		fs.Usage()
		return nil, ErrExit(2)
	}
	return &cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func main1(r Renderer, in io.Reader, args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("mode", cfg.mode))

	ir := newIntReader(in)
	switch cfg.mode {
	case modePositions:
		return runPositions(r, ir, logger)
	default:
		return runExcept(r, ir, logger)
	}
}

// readList prompts for and reads one list using read.
func readList(r Renderer, prompt string, read func() ([]int, error)) (*IntList, error) {
	r.Prompt(prompt)
	vs, err := read()
	if err != nil {
		return nil, err
	}
	l := new(IntList)
	for _, v := range vs {
		l.Append(v)
	}
	return l, nil
}

func runExcept(r Renderer, ir *intReader, logger *zap.Logger) error {
	list1, err := readList(r, "Enter elements for the first list (enter 0 to stop):", ir.untilZero)
	if err != nil {
		return err
	}
	list2, err := readList(r, "Enter elements for the second list (enter 0 to stop):", ir.untilZero)
	if err != nil {
		return err
	}
	logger.Debug("lists read", zap.Int("first", list1.Len()), zap.Int("second", list2.Len()))

	r.List(list1)
	r.List(list2)

	before := list1.Len()
	list1.DeleteIn(list2)
	logger.Debug("removed shared elements",
		zap.Int("removed", before-list1.Len()),
		zap.Stringer("result", list1))

	r.Message("The list after removing elements present in the second list:")
	r.List(list1)
	return nil
}

func runPositions(r Renderer, ir *intReader, logger *zap.Logger) error {
	list, err := readList(r, "Enter elements of the list (enter a non-number to stop):", ir.untilNonNumeric)
	if err != nil {
		return err
	}
	logger.Debug("list read", zap.Int("size", list.Len()))
	r.List(list)

	r.Prompt("Enter positions to delete (enter a non-number to stop):")
	positions, err := ir.untilNonNumeric()
	if err != nil {
		return err
	}
	for _, p := range positions {
		if p < 1 || p > list.Len() {
			r.Warn(fmt.Sprintf("ignoring position %d: list has %d elements", p, list.Len()))
		}
	}
	logger.Debug("positions read", zap.Ints("positions", positions))

	before := list.Len()
	list.DeleteAtPositions(positions)
	logger.Debug("removed positions",
		zap.Int("removed", before-list.Len()),
		zap.Stringer("result", list))

	r.Message("The list after removing elements at the given positions:")
	r.List(list)
	return nil
}
