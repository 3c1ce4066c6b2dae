// Package assets resolves slide image ids to something a terminal can show.
//
// Images are looked up by id in a configured directory first and in the
// embedded defaults second. Text art (.txt) is used as is; PNG, JPEG and GIF
// files are drawn with half-block cells. Resolution never fails: a missing or
// broken image becomes a placeholder frame.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/onboarding/internal/geometry"
)

//go:embed defaults/*.txt
var defaults embed.FS

var errNotFound = errors.New("image not found")

var extensions = []string{".txt", ".png", ".jpg", ".jpeg", ".gif"}

type cacheKey struct {
	id  string
	box geometry.Size
}

// Library resolves image ids. It is used from the UI event loop only.
type Library struct {
	sources []fs.FS
	log     *zap.Logger
	cache   map[cacheKey]string
	ids     []string
}

// Option configures a Library.
type Option func(*Library)

func WithLogger(l *zap.Logger) Option {
	return func(lib *Library) {
		if l != nil {
			lib.log = l
		}
	}
}

// WithoutDefaults drops the embedded images.
func WithoutDefaults() Option {
	return func(lib *Library) {
		if n := len(lib.sources); n > 0 {
			lib.sources = lib.sources[:n-1]
		}
	}
}

// NewLibrary returns a library reading dir (which may be empty) and the
// embedded defaults.
func NewLibrary(dir string, opts ...Option) *Library {
	lib := &Library{
		log:   zap.NewNop(),
		cache: make(map[cacheKey]string),
	}
	if dir != "" {
		lib.sources = append(lib.sources, os.DirFS(dir))
	}
	sub, err := fs.Sub(defaults, "defaults")
	if err == nil {
		lib.sources = append(lib.sources, sub)
	}
	for _, opt := range opts {
		opt(lib)
	}
	lib.log = lib.log.Named("assets")
	return lib
}

// Resolve draws the image for id so it fits box. An empty id resolves to an
// empty string.
func (l *Library) Resolve(id string, box geometry.Size) string {
	id = strings.TrimSpace(id)
	if id == "" || box.Empty() {
		return ""
	}
	key := cacheKey{id: id, box: box}
	if art, ok := l.cache[key]; ok {
		return art
	}
	art, err := l.load(id, box)
	if err != nil {
		fields := []zap.Field{zap.String("id", id), zap.Error(err)}
		if errors.Is(err, errNotFound) {
			if near := l.closest(id); near != "" {
				fields = append(fields, zap.String("closest", near))
			}
		}
		l.log.Warn("using placeholder image", fields...)
		art = Placeholder(id, box)
	}
	l.cache[key] = art
	return art
}

// IDs lists every image id the library can resolve, sorted.
func (l *Library) IDs() []string {
	if l.ids != nil {
		return l.ids
	}
	seen := map[string]bool{}
	for _, src := range l.sources {
		entries, err := fs.ReadDir(src, ".")
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !supported(e.Name()) {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = true
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	l.ids = ids
	return ids
}

func (l *Library) load(id string, box geometry.Size) (string, error) {
	for _, src := range l.sources {
		for _, ext := range extensions {
			data, err := fs.ReadFile(src, id+ext)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return "", fmt.Errorf("read %s%s: %w", id, ext, err)
			}
			if ext == ".txt" {
				return cropText(string(data), box), nil
			}
			img, _, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				return "", fmt.Errorf("decode %s%s: %w", id, ext, err)
			}
			return HalfBlocks(img, box), nil
		}
	}
	return "", fmt.Errorf("%w: %q", errNotFound, id)
}

// closest returns the known id with the smallest edit distance to id.
func (l *Library) closest(id string) string {
	best, bestDist := "", -1
	for _, candidate := range l.IDs() {
		d := levenshtein.ComputeDistance(id, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

func supported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// cropText trims text art to box without breaking escape sequences.
func cropText(s string, box geometry.Size) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > box.Height {
		lines = lines[:box.Height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(strings.TrimRight(line, " \r"), box.Width, "")
	}
	return strings.Join(lines, "\n")
}

var placeholderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Align(lipgloss.Center, lipgloss.Center)

// Placeholder is the frame shown in place of an image that cannot be loaded.
func Placeholder(id string, box geometry.Size) string {
	w := min(box.Width, 24)
	h := min(box.Height, 5)
	if w < 4 || h < 3 {
		return ansi.Truncate("["+id+"]", box.Width, "")
	}
	// Width and Height exclude the border.
	return placeholderStyle.
		Width(w - 2).
		Height(h - 2).
		Render(ansi.Truncate(id, w-2, "…"))
}
