/*
Package tidy contains the orchestration core of the test data clean-up
tool: argument validation, the dispatcher for the three operating
modes, and the visitor walking a discovered suite structure.

Basic usage:

	t := tidy.New(afero.NewOsFs(), log, opts)
	out, err := t.File("tests.robot", "")
*/
package tidy

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"

	"github.com/luomingzhi/robotframework/pkg/logger"
	"github.com/luomingzhi/robotframework/pkg/model"
	"github.com/luomingzhi/robotframework/pkg/suite"
	"github.com/luomingzhi/robotframework/pkg/writer"
)

// Tidy dispatches a validated invocation to exactly one of the three
// operations: single file transform, multi-file in-place transform, or
// recursive directory transform.
type Tidy struct {
	fs   afero.Fs
	log  logger.Logger
	opts OptionSet
}

// New creates a Tidy operating on the given filesystem with an already
// validated OptionSet.
func New(fs afero.Fs, log logger.Logger, opts OptionSet) *Tidy {
	return &Tidy{fs: fs, log: log, opts: opts}
}

// File tidies a single file. With a non-empty outpath the result is
// written there, preserving the configured line separator exactly, and
// the returned slice is nil. Without an outpath the result is returned
// with any \r\n sequences normalized to \n.
func (t *Tidy) File(path, outpath string) ([]byte, error) {
	t.log.WithFields(logger.Fields{
		"path":    path,
		"outpath": outpath,
	}).Info("Tidying file")

	data, err := t.parse(path)
	if err != nil {
		return nil, err
	}

	if outpath == "" {
		var buf bytes.Buffer
		if err := t.render(data, &buf); err != nil {
			return nil, err
		}

		return bytes.ReplaceAll(buf.Bytes(), []byte("\r\n"), []byte("\n")), nil
	}

	return nil, t.saveFile(data, outpath)
}

// Inplace tidies the given files in the order given, each replacing
// itself. A file is parsed fully before its original is removed, so a
// parse failure leaves the file untouched. The rewrite itself is not
// atomic: a failure between remove and recreate loses the original.
func (t *Tidy) Inplace(paths ...string) error {
	for _, path := range paths {
		t.log.WithFields(logger.Fields{
			"path": path,
		}).Info("Tidying file in place")

		data, err := t.parse(path)
		if err != nil {
			return err
		}
		if err := t.fs.Remove(path); err != nil {
			return &DataError{Path: path, Err: err}
		}
		if err := t.saveFile(data, path); err != nil {
			return err
		}
	}

	return nil
}

// Directory tidies every data file under dir in place, visiting each
// directory's init file before its children and children in the stable
// order the discovery reported them.
func (t *Tidy) Directory(dir string) error {
	t.log.WithFields(logger.Fields{
		"path": dir,
	}).Info("Tidying directory recursively")

	root, err := suite.NewBuilder(t.fs, t.log).Build(dir)
	if err != nil {
		return err
	}

	return root.Visit(t)
}

// VisitFile implements suite.Visitor.
func (t *Tidy) VisitFile(n *suite.FileNode) error {
	return t.Inplace(n.Path)
}

// VisitDirectory implements suite.Visitor. The init file is always
// processed before any child.
func (t *Tidy) VisitDirectory(n *suite.DirectoryNode) error {
	if n.InitFile != "" {
		if err := t.Inplace(n.InitFile); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := child.Visit(t); err != nil {
			return err
		}
	}

	return nil
}

func (t *Tidy) parse(path string) (*model.File, error) {
	data, err := model.Parse(t.fs, path, t.log)
	if err != nil {
		return nil, &DataError{Path: path, Err: err}
	}

	return data, nil
}

func (t *Tidy) render(data *model.File, out *bytes.Buffer) error {
	w := writer.New(t.writerOptions(), t.log)
	if err := w.Write(data, out); err != nil {
		return &DataError{Path: data.Path, Err: err}
	}

	return nil
}

// saveFile renders data into a freshly created file at outpath. The
// sink is closed on every exit path.
func (t *Tidy) saveFile(data *model.File, outpath string) error {
	out, err := t.fs.Create(outpath)
	if err != nil {
		return fmt.Errorf("opening output file '%s' failed: %w", outpath, err)
	}

	w := writer.New(t.writerOptions(), t.log)
	writeErr := w.Write(data, out)
	closeErr := out.Close()

	if writeErr != nil {
		return &DataError{Path: outpath, Err: writeErr}
	}
	if closeErr != nil {
		return fmt.Errorf("closing output file '%s' failed: %w", outpath, closeErr)
	}

	return nil
}

func (t *Tidy) writerOptions() writer.Options {
	return writer.Options{
		PipeSeparated: t.opts.PipeSeparated,
		SpaceCount:    t.opts.SpaceCount,
		LineSeparator: t.opts.LineSeparator,
	}
}
