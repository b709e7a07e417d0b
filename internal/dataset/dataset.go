// Package dataset reads the local name_age lookup file.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Outcome describes how a lookup against the local file ended.
type Outcome int

const (
	// Found means a record matched and Age is set.
	Found Outcome = iota
	// NotFound means the file was read and no record matched.
	NotFound
	// Unreadable means the file could not be read; Err is set.
	Unreadable
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Unreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of a single lookup.
type Result struct {
	Age     string
	Outcome Outcome
	Err     error
}

// File is a local dataset with one name_age record per line.
// The file is re-read on every lookup so edits apply without a restart.
type File struct {
	Path string
}

// New returns a dataset backed by the file at path.
func New(path string) *File {
	return &File{Path: path}
}

// Lookup scans the file for a record whose name matches name, ignoring case.
// The first matching record wins.
func (f *File) Lookup(name string) Result {
	fh, err := os.Open(f.Path)
	if err != nil {
		return Result{Outcome: Unreadable, Err: fmt.Errorf("open dataset: %w", err)}
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimSpace(scanner.Text()), "_")
		if len(fields) < 2 {
			continue
		}
		if strings.EqualFold(fields[0], name) {
			return Result{Age: fields[1], Outcome: Found}
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{Outcome: Unreadable, Err: fmt.Errorf("read dataset: %w", err)}
	}

	return Result{Outcome: NotFound}
}

// Check reports whether the dataset file can be opened.
func (f *File) Check() error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	return fh.Close()
}
