// Package adapter contains the collaborators of the source container: source
// map parsing, path resolution, content fetching, WebAssembly symbol bridges
// and the front-end sink.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// ScriptExtensions are the file extensions treated as compiled scripts.
var ScriptExtensions = map[string]m.SourceKind{
	".js":   m.KindGenerated,
	".mjs":  m.KindGenerated,
	".cjs":  m.KindGenerated,
	".wasm": m.KindWasm,
}

// SourceFSAdapter abstracts the file system operations used to discover and
// read compiled scripts, so the domain layer can be tested without the disk.
type SourceFSAdapter interface {
	// Get expands Go-style path patterns ("./...", "./dist") into script files,
	// skipping files whose path matches any exclude regex.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Path, error)

	// Walk traverses root. When recursive is false sub-directories are skipped.
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns a SHA-256 fingerprint of the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Path, error) {
	excludeRes, err := compileExclude(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	seen := map[m.Path]struct{}{}

	var found []m.Path

	for _, pattern := range paths {
		root, recursive := splitPattern(string(pattern))

		info, err := a.FileInfo(ctx, m.Path(root))
		if err != nil {
			return nil, fmt.Errorf("path error: %w", err)
		}

		if !info.IsDir() {
			abs, err := filepath.Abs(root)
			if err != nil {
				return nil, err
			}

			if _, ok := seen[m.Path(abs)]; !ok {
				seen[m.Path(abs)] = struct{}{}
				found = append(found, m.Path(abs))
			}

			continue
		}

		err = a.Walk(ctx, m.Path(root), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if info.Name() == "node_modules" || info.Name() == ".git" {
					return filepath.SkipDir
				}

				return nil
			}

			if _, ok := ScriptExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
				return nil
			}

			if matchesAny(excludeRes, path) {
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			if _, ok := seen[m.Path(abs)]; !ok {
				seen[m.Path(abs)] = struct{}{}
				found = append(found, m.Path(abs))
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

// Walk implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// HashFile implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// splitPattern turns "./dist/..." into ("./dist", true).
func splitPattern(pattern string) (string, bool) {
	if pattern == "..." {
		return ".", true
	}

	if strings.HasSuffix(pattern, "/...") {
		root := strings.TrimSuffix(pattern, "/...")
		if root == "" {
			root = "/"
		}

		return root, true
	}

	return pattern, false
}

func compileExclude(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		res = append(res, re)
	}

	return res, nil
}

func matchesAny(res []*regexp.Regexp, path string) bool {
	for _, re := range res {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
