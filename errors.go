package vshell

import "errors"

// Failure classification sentinels. Callers wrap these with fmt.Errorf("%w: ...")
// to attach context and match them with errors.Is.
var (
	// ErrPathNotFound reports a missing segment encountered while walking the
	// tree; the wrapped message names the full intended absolute path.
	ErrPathNotFound = errors.New("path not found")

	// ErrNotADirectory reports an operation that requires a directory hitting
	// a file node.
	ErrNotADirectory = errors.New("not a directory")

	// ErrInvalidArgument reports a malformed argument or wrong argument count
	// for a builtin command.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownCommand reports an unrecognized command name; the wrapped
	// message includes the attempted name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrImportFormat reports a header or row-level problem in a tree
	// description; row-level messages carry the 1-based row number, counting
	// the header as row 1.
	ErrImportFormat = errors.New("import format error")

	// ErrTreeConflict reports an intermediate path segment that exists as a
	// file where a directory is required.
	ErrTreeConflict = errors.New("tree conflict")
)

// ErrExit signals a cooperative session termination request. It is a control
// signal, not a failure: callers stop dispatching and must not report it.
var ErrExit = errors.New("exit")
