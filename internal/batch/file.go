package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdStream is the path that selects stdin or stdout.
const StdStream = "-"

// OutputMode is the permission of finished output files. Tables may hold
// private keys.
const OutputMode os.FileMode = 0600

// OpenInput opens path for reading, or stdin for "-".
func OpenInput(path string) (io.ReadCloser, error) {
	if path == StdStream {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// Output writes one complete file. Data goes to a temporary file next to the
// destination and only replaces it on Commit; Close without Commit removes
// the temporary file so an aborted batch leaves nothing behind.
type Output struct {
	path string
	tmp  *os.File
	std  io.Writer
	done bool
	// noReplace makes Commit fail rather than replace an existing file.
	noReplace bool
}

// CreateOutput prepares an Output for path, or stdout for "-".
func CreateOutput(path string) (*Output, error) {
	if path == StdStream {
		return &Output{path: path, std: os.Stdout}, nil
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return &Output{path: path, tmp: tmp}, nil
}

// CreateNewOutput is CreateOutput for a file that must not exist yet. Commit
// links the data into place and fails with fs.ErrExist if path appeared in
// the meantime.
func CreateNewOutput(path string) (*Output, error) {
	o, err := CreateOutput(path)
	if err != nil {
		return nil, err
	}
	o.noReplace = true
	return o, nil
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	if o.done {
		return 0, fmt.Errorf("write %s: output already closed", o.path)
	}
	if o.std != nil {
		return o.std.Write(p)
	}
	return o.tmp.Write(p)
}

// Commit flushes the data to disk and atomically moves it into place.
func (o *Output) Commit() error {
	if o.done {
		return fmt.Errorf("commit %s: output already closed", o.path)
	}
	o.done = true
	if o.std != nil {
		return nil
	}

	name := o.tmp.Name()
	if err := o.tmp.Chmod(OutputMode); err != nil {
		o.discard()
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := o.tmp.Sync(); err != nil {
		o.discard()
		return fmt.Errorf("sync output: %w", err)
	}
	if err := o.tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close output: %w", err)
	}
	if o.noReplace {
		err := os.Link(name, o.path)
		os.Remove(name)
		if err != nil {
			return fmt.Errorf("link output: %w", err)
		}
		return nil
	}
	if err := os.Rename(name, o.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}

// Close discards uncommitted data. It is a no-op after Commit.
func (o *Output) Close() error {
	if o.done {
		return nil
	}
	o.done = true
	if o.std != nil {
		return nil
	}
	return o.discard()
}

func (o *Output) discard() error {
	name := o.tmp.Name()
	o.tmp.Close()
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// WriteFile runs fn against a fresh Output for path and commits it only if
// fn succeeds.
func WriteFile(path string, fn func(w io.Writer) error) error {
	out, err := CreateOutput(path)
	if err != nil {
		return err
	}
	return writeOutput(out, fn)
}

// WriteNewFile is WriteFile for a path that must not exist. An existing file
// is never touched and the error matches fs.ErrExist.
func WriteNewFile(path string, fn func(w io.Writer) error) error {
	out, err := CreateNewOutput(path)
	if err != nil {
		return err
	}
	return writeOutput(out, fn)
}

func writeOutput(out *Output, fn func(w io.Writer) error) error {
	defer out.Close()

	if err := fn(out); err != nil {
		return err
	}
	return out.Commit()
}
