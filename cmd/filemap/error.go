package main

import "errors"

var (
	// ErrUnknownCommand is an error that occurs when an unrecognized
	// subcommand is given on the command line.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrBadArguments is an error that occurs when a subcommand receives
	// the wrong number or form of arguments.
	ErrBadArguments = errors.New("bad arguments")

	// ErrUnknownPath is an error that occurs when a queried path is not
	// part of the index.
	ErrUnknownPath = errors.New("path is not indexed")
)
