// Package store keeps a library of recorded gestures on disk.
//
// Each gesture is a directory under the library root, and each drawing of
// that gesture is one CSV file holding its x,y points:
//
//	<root>/<gesture>/0.csv
//	<root>/<gesture>/1.csv
//	...
//
// Files are ordered by their numeric name, not lexically.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gesturepad/internal/geom"
	"gesturepad/internal/logging"
)

const (
	ext    = ".csv"
	tmpExt = ".tmp"
)

// ErrBadName is returned for gesture names that cannot be used as a single
// directory name.
var ErrBadName = errors.New("store: invalid gesture name")

// Library is a directory of gestures.
type Library struct {
	dir string
}

// Open returns the library rooted at dir, creating the directory if needed.
func Open(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return &Library{dir: dir}, nil
}

// Dir returns the library root.
func (l *Library) Dir() string { return l.dir }

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

// Names lists the gestures in the library, sorted.
func (l *Library) Names() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Create makes an empty gesture. Creating an existing gesture is not an
// error.
func (l *Library) Create(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(l.dir, name), 0o755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// drawingFile is one numbered drawing file of a gesture.
type drawingFile struct {
	index int
	path  string
}

// files lists the numbered drawing files of a gesture in index order.
// A missing gesture yields no files.
func (l *Library) files(name string) ([]drawingFile, error) {
	dir := filepath.Join(l.dir, name)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	var out []drawingFile
	for _, e := range entries {
		fn := e.Name()
		if e.IsDir() || filepath.Ext(fn) != ext {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSuffix(fn, ext))
		if err != nil || idx < 0 {
			logging.Logger().Warn("skipping unnumbered drawing file", "path", filepath.Join(dir, fn))
			continue
		}
		out = append(out, drawingFile{index: idx, path: filepath.Join(dir, fn)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out, nil
}

// Load reads every drawing of a gesture in index order. A gesture that does
// not exist yields an empty slice and no error.
func (l *Library) Load(name string) ([]*geom.Drawing, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	files, err := l.files(name)
	if err != nil {
		return nil, err
	}
	drawings := make([]*geom.Drawing, 0, len(files))
	for _, f := range files {
		d, err := readFile(f.path)
		if err != nil {
			return nil, err
		}
		drawings = append(drawings, d)
	}
	logging.Logger().Info("loaded gesture", "gesture", name, "drawings", len(drawings))
	return drawings, nil
}

// Save replaces all drawings of a gesture with ds, numbered from 0.
// The new files are written under temporary names first, so a failed write
// leaves the previous drawings in place.
func (l *Library) Save(name string, ds []*geom.Drawing) error {
	if err := l.Create(name); err != nil {
		return err
	}
	old, err := l.files(name)
	if err != nil {
		return err
	}

	tmp := make([]string, 0, len(ds))
	for i, d := range ds {
		path := l.path(name, i) + tmpExt
		if err := writeFile(path, d); err != nil {
			removeAll(append(tmp, path))
			return err
		}
		tmp = append(tmp, path)
	}
	for i, path := range tmp {
		if err := os.Rename(path, l.path(name, i)); err != nil {
			removeAll(tmp[i:])
			return fmt.Errorf("store: %w", err)
		}
	}
	for _, f := range old {
		if f.index < len(ds) {
			continue
		}
		if err := os.Remove(f.path); err != nil {
			return fmt.Errorf("store: %w", err)
		}
	}
	logging.Logger().Info("saved gesture", "gesture", name, "drawings", len(ds))
	return nil
}

// removeAll deletes leftover temporary files, logging the ones that stay.
func removeAll(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			logging.Logger().Warn("cannot remove temporary file", "path", p, "err", err)
		}
	}
}

// Append adds d to a gesture after its last drawing and returns the index
// it was stored under.
func (l *Library) Append(name string, d *geom.Drawing) (int, error) {
	if err := l.Create(name); err != nil {
		return 0, err
	}
	files, err := l.files(name)
	if err != nil {
		return 0, err
	}
	idx := 0
	if len(files) > 0 {
		idx = files[len(files)-1].index + 1
	}
	if err := writeFile(l.path(name, idx), d); err != nil {
		return 0, err
	}
	logging.Logger().Debug("appended drawing", "gesture", name, "index", idx, "points", d.Len())
	return idx, nil
}

func (l *Library) path(name string, idx int) string {
	return filepath.Join(l.dir, name, strconv.Itoa(idx)+ext)
}

func readFile(path string) (*geom.Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()
	d, err := geom.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	return d, nil
}

func writeFile(path string, d *geom.Drawing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := geom.WriteCSV(f, d); err != nil {
		f.Close()
		return fmt.Errorf("store: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
