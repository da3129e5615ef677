package pipeline

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/backmassage/imgnorm/internal/naming"
	"github.com/backmassage/imgnorm/internal/planner"
)

// Logger is the minimal logging interface Collect needs.
type Logger interface {
	Warn(string, ...interface{})
}

// Collect walks root and returns every directory (root included) that
// directly contains at least one recognized image, paired with those file
// names. Directories without images are omitted.
//
// root itself is read through any symlink, and returned paths stay under
// root as given so that a linked root keeps its own name as the parent
// label. Symlinks below root are not followed. An unreadable root is an
// error; an unreadable subdirectory is logged and its subtree skipped.
func Collect(fsys billy.Filesystem, root string, log Logger) ([]planner.ImageDir, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, err
	}

	c := &collector{index: make(map[string]int), log: log}
	var subdirs []string
	for _, fi := range entries {
		if fi.IsDir() {
			subdirs = append(subdirs, filepath.Join(root, fi.Name()))
			continue
		}
		c.add(root, fi.Name())
	}
	for _, dir := range subdirs {
		if err := util.Walk(fsys, dir, c.visit); err != nil {
			return nil, err
		}
	}
	return c.dirs, nil
}

type collector struct {
	dirs  []planner.ImageDir
	index map[string]int // dir → position in dirs
	log   Logger
}

func (c *collector) visit(path string, info os.FileInfo, err error) error {
	if err != nil {
		if c.log != nil {
			c.log.Warn("Skipping unreadable path %s: %v", path, err)
		}
		return filepath.SkipDir
	}
	if !info.IsDir() {
		c.add(filepath.Dir(path), info.Name())
	}
	return nil
}

func (c *collector) add(dir, name string) {
	if !naming.IsImage(name) {
		return
	}
	i, ok := c.index[dir]
	if !ok {
		i = len(c.dirs)
		c.index[dir] = i
		c.dirs = append(c.dirs, planner.ImageDir{Dir: dir})
	}
	c.dirs[i].Files = append(c.dirs[i].Files, name)
}
