package adapter

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// DefaultSourceMapExclude keeps maps of installed dependencies unresolved.
var DefaultSourceMapExclude = []string{`[/\\]node_modules[/\\]`}

// PathResolver converts runtime URLs to local paths and decides which source
// maps are worth resolving.
type PathResolver interface {
	// URLToAbsolutePath maps a URL to a local absolute path. sourceMap is the
	// map the URL came from, or nil for compiled scripts.
	URLToAbsolutePath(ctx context.Context, rawURL string, sourceMap ParsedMap) (m.Path, bool)

	// ShouldResolveSourceMap is the policy hook applied before a map is loaded.
	ShouldResolveSourceMap(meta m.SourceMapMetadata) bool

	// FileURL returns the file:// URL of an absolute path.
	FileURL(path m.Path) string
}

// PathResolverOptions configures a LocalPathResolver.
type PathResolverOptions struct {
	// WebRoot is where webpack:// and served URLs live on disk.
	WebRoot string
	// BaseURL is the URL the WebRoot is served from, e.g. http://localhost:8080/.
	BaseURL string
	// Exclude lists regexes; maps whose URL or compiled path match are skipped.
	Exclude []string
}

// LocalPathResolver resolves file, webpack and served URLs against the local
// file system layout.
type LocalPathResolver struct {
	webRoot string
	baseURL *url.URL
	exclude []*regexp.Regexp
}

// NewLocalPathResolver constructs a LocalPathResolver.
func NewLocalPathResolver(opts PathResolverOptions) (*LocalPathResolver, error) {
	resolver := &LocalPathResolver{}

	if opts.WebRoot != "" {
		root, err := filepath.Abs(opts.WebRoot)
		if err != nil {
			return nil, fmt.Errorf("invalid web root %q: %w", opts.WebRoot, err)
		}

		resolver.webRoot = root
	}

	if opts.BaseURL != "" {
		base, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
		}

		resolver.baseURL = base
	}

	for _, pattern := range opts.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		resolver.exclude = append(resolver.exclude, re)
	}

	return resolver, nil
}

// URLToAbsolutePath implements PathResolver.
func (r *LocalPathResolver) URLToAbsolutePath(ctx context.Context, rawURL string, _ ParsedMap) (m.Path, bool) {
	if ctx.Err() != nil || rawURL == "" || IsDataURI(rawURL) {
		return "", false
	}

	if filepath.IsAbs(rawURL) {
		return m.Path(filepath.Clean(rawURL)), true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return fileURLToPath(u)
	case "webpack":
		return r.underWebRoot(stripWebpackNamespace(u))
	case "http", "https":
		return r.servedPath(u)
	}

	return "", false
}

// ShouldResolveSourceMap implements PathResolver.
func (r *LocalPathResolver) ShouldResolveSourceMap(meta m.SourceMapMetadata) bool {
	for _, re := range r.exclude {
		if re.MatchString(string(meta.CompiledPath)) {
			return false
		}

		if !IsDataURI(meta.SourceMapURL) && re.MatchString(meta.SourceMapURL) {
			return false
		}
	}

	return true
}

// FileURL implements PathResolver.
func (r *LocalPathResolver) FileURL(path m.Path) string {
	return fileURL(path)
}

func (r *LocalPathResolver) underWebRoot(rel string) (m.Path, bool) {
	if r.webRoot == "" || rel == "" {
		return "", false
	}

	return m.Path(filepath.Join(r.webRoot, filepath.FromSlash(rel))), true
}

func (r *LocalPathResolver) servedPath(u *url.URL) (m.Path, bool) {
	if r.baseURL == nil {
		return "", false
	}

	if !strings.EqualFold(u.Scheme, r.baseURL.Scheme) || !strings.EqualFold(u.Host, r.baseURL.Host) {
		return "", false
	}

	prefix := strings.TrimSuffix(r.baseURL.Path, "/") + "/"
	p := u.Path

	if !strings.HasPrefix(p, prefix) {
		return "", false
	}

	return r.underWebRoot(strings.TrimPrefix(p, prefix))
}

// stripWebpackNamespace turns webpack://name/./src/a.ts and
// webpack:///./src/a.ts into src/a.ts.
func stripWebpackNamespace(u *url.URL) string {
	p := strings.TrimPrefix(u.Path, "/")

	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}

	return p
}

func fileURLToPath(u *url.URL) (m.Path, bool) {
	p := u.Path
	if p == "" {
		return "", false
	}

	// file:///C:/dir -> C:/dir
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}

	return m.Path(filepath.Clean(filepath.FromSlash(p))), true
}

func fileURL(path m.Path) string {
	p := filepath.ToSlash(string(path))
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return (&url.URL{Scheme: "file", Path: p}).String()
}
