package routes

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Index is the set of routes served from a content directory.
type Index struct {
	files   map[string]string          // route -> slash-separated source path
	anchors map[string]map[string]bool // route -> heading IDs
}

// skipDir reports directories that never hold routable content.
func skipDir(name string) bool {
	return name == "node_modules" || (strings.HasPrefix(name, ".") && name != ".")
}

// Scan walks srcDir and indexes every markdown file.
func Scan(srcDir string) (*Index, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryNotFound, "content directory not found").
			WithContext("dir", srcDir).Build()
	}
	if !info.IsDir() {
		return nil, ferrors.FileSystemError("content path is not a directory").WithContext("dir", srcDir).Build()
	}

	ix := NewIndex()
	err = filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != srcDir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		ix.Add(filepath.ToSlash(rel), content)
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "scan content directory").
			WithContext("dir", srcDir).Build()
	}
	return ix, nil
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{files: map[string]string{}, anchors: map[string]map[string]bool{}}
}

// Add indexes one markdown document by its slash-separated path relative to
// the content root.
func (ix *Index) Add(rel string, content []byte) {
	route := RouteFor(rel)
	ix.files[route] = rel
	ix.anchors[route] = headingIDs(content)
}

// RouteFor maps a content-relative markdown path to its route.
func RouteFor(rel string) string {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	trimmed := strings.TrimSuffix(rel, path.Ext(rel))
	if trimmed == "index" {
		return "/"
	}
	if dir, ok := strings.CutSuffix(trimmed, "/index"); ok {
		return "/" + dir + "/"
	}
	return "/" + trimmed
}

// Routes returns every indexed route, sorted.
func (ix *Index) Routes() []string {
	out := make([]string, 0, len(ix.files))
	for r := range ix.files {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Source returns the content file serving route.
func (ix *Index) Source(route string) (string, bool) {
	rel, ok := ix.files[route]
	return rel, ok
}

// Resolve maps a base-free link path (no query or fragment) onto an indexed
// route. "/" always resolves.
func (ix *Index) Resolve(p string) (string, bool) {
	if p == "" || p == "/" {
		return "/", true
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for _, suffix := range []string{".html", ".md"} {
		if trimmed, ok := strings.CutSuffix(p, suffix); ok {
			p = trimmed
			break
		}
	}
	if dir, ok := strings.CutSuffix(p, "/index"); ok {
		p = dir + "/"
	}

	candidates := []string{p}
	if strings.HasSuffix(p, "/") {
		candidates = append(candidates, strings.TrimSuffix(p, "/"))
	} else {
		candidates = append(candidates, p+"/")
	}
	for _, c := range candidates {
		if _, ok := ix.files[c]; ok {
			return c, true
		}
	}
	return "", false
}

// HasAnchor reports whether route has a heading with the given ID.
func (ix *Index) HasAnchor(route, id string) bool {
	return ix.anchors[route][id]
}
