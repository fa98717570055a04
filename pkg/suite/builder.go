package suite

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/luomingzhi/robotframework/pkg/logger"
)

// acceptedExtensions are the data file extensions included in a
// discovered structure. Everything else is filtered out here, not in
// the visitors.
var acceptedExtensions = map[string]bool{
	".robot": true,
	".txt":   true,
}

// Builder discovers the suite structure under a root directory.
type Builder struct {
	fs  afero.Fs
	log logger.Logger
}

// NewBuilder creates a Builder reading through the given filesystem.
func NewBuilder(fs afero.Fs, log logger.Logger) *Builder {
	return &Builder{fs: fs, log: log}
}

// Build discovers the structure rooted at dir. The traversal is
// read-only and does not follow links out of the rooted directory.
func (b *Builder) Build(dir string) (*DirectoryNode, error) {
	b.log.WithFields(logger.Fields{
		"path": dir,
	}).Debug("Building suite structure")

	info, err := b.fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory '%s' failed: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("'%s' is not a directory", dir)
	}

	return b.buildDirectory(dir)
}

func (b *Builder) buildDirectory(dir string) (*DirectoryNode, error) {
	entries, err := afero.ReadDir(b.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory '%s' failed: %w", dir, err)
	}

	// afero.ReadDir sorts by name already; sorting again keeps the
	// ordering contract independent of the fs implementation.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	node := &DirectoryNode{Path: dir}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if !entry.IsDir() && isInitFile(name) {
			if node.InitFile == "" {
				node.InitFile = path
			} else {
				b.log.WithFields(logger.Fields{
					"path": path,
				}).Warn("Ignoring extra init file")
			}
			continue
		}

		if isHidden(name) {
			b.log.WithFields(logger.Fields{
				"path": path,
			}).Trace("Ignoring hidden entry")
			continue
		}

		if entry.IsDir() {
			child, err := b.buildDirectory(path)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
			continue
		}

		if acceptedExtensions[strings.ToLower(filepath.Ext(name))] {
			node.Children = append(node.Children, &FileNode{Path: path})
		}
	}

	return node, nil
}

func isInitFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))

	return strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), "__init__") &&
		acceptedExtensions[ext]
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
