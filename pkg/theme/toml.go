package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// thFileTheme is the serializable representation of a Theme shared by the
// TOML and YAML loaders. Unset glyphs are simply absent from the maps.
//
//	name = "mine"
//	row_lines = true
//
//	[simple]
//	horizontal = "─"
//	vertical = "│"
//	cross = "┼"
//
//	[edges]
//	top = "═\n─"
//
//	[junctions]
//	top_left = "╔\n╟"
type thFileTheme struct {
	Name      string            `toml:"name" yaml:"name"`
	RowLines  bool              `toml:"row_lines" yaml:"row_lines"`
	Simple    thFileSimple      `toml:"simple" yaml:"simple"`
	Edges     map[string]string `toml:"edges" yaml:"edges"`
	Dividers  map[string]string `toml:"dividers" yaml:"dividers"`
	Junctions map[string]string `toml:"junctions" yaml:"junctions"`
}

type thFileSimple struct {
	Horizontal *string `toml:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   *string `toml:"vertical,omitempty" yaml:"vertical,omitempty"`
	Cross      *string `toml:"cross,omitempty" yaml:"cross,omitempty"`
}

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var ft thFileTheme
	md, err := toml.Decode(string(data), &ft)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, fmt.Errorf("theme: unknown TOML key %q", undecoded[0].String())
	}
	return thFromFile(ft)
}

// SaveToTOML serializes a theme to TOML bytes. Only glyphs that are set
// are written, so the fallback chains survive a round trip.
func SaveToTOML(t Theme) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(thToFile(t)); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFile reads a theme from path, choosing the format by extension
// (.toml, .yaml or .yml).
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadFromTOML(data)
	case ".yaml", ".yml":
		return LoadFromYAML(data)
	default:
		return Theme{}, fmt.Errorf("theme: unsupported file extension %q", filepath.Ext(path))
	}
}

// LoadDir loads and registers every theme file in dir. Files with other
// extensions are ignored. It returns the names registered.
func LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".toml", ".yaml", ".yml":
		default:
			continue
		}
		t, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return names, fmt.Errorf("%s: %w", e.Name(), err)
		}
		if err := Register(t); err != nil {
			return names, fmt.Errorf("%s: %w", e.Name(), err)
		}
		names = append(names, t.Name)
	}
	return names, nil
}

func thFromFile(ft thFileTheme) (Theme, error) {
	t := Theme{Name: ft.Name, RowLines: ft.RowLines}
	if ft.Simple.Horizontal != nil {
		t.Horizontal = Some(Pattern(*ft.Simple.Horizontal))
	}
	if ft.Simple.Vertical != nil {
		t.Vertical = Some(Pattern(*ft.Simple.Vertical))
	}
	if ft.Simple.Cross != nil {
		t.Cross = Some(Pattern(*ft.Simple.Cross))
	}
	if err := thFillGlyphs(t.Edges[:], sideNames[:], ft.Edges, "edges"); err != nil {
		return Theme{}, err
	}
	if err := thFillGlyphs(t.Dividers[:], dividerNames[:], ft.Dividers, "dividers"); err != nil {
		return Theme{}, err
	}
	if err := thFillGlyphs(t.Junctions[:], junctionNames[:], ft.Junctions, "junctions"); err != nil {
		return Theme{}, err
	}
	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// thFillGlyphs sets dst[i] for every key in src that matches names[i].
func thFillGlyphs(dst []Glyph, names []string, src map[string]string, table string) error {
	for key, value := range src {
		idx := thIndexOf(names, strings.ToLower(key))
		if idx < 0 {
			return fmt.Errorf("theme: unknown %s key %q", table, key)
		}
		dst[idx] = Some(Pattern(value))
	}
	return nil
}

func thIndexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func thToFile(t Theme) thFileTheme {
	ft := thFileTheme{Name: t.Name, RowLines: t.RowLines}
	if p, ok := t.Horizontal.Get(); ok {
		s := string(p)
		ft.Simple.Horizontal = &s
	}
	if p, ok := t.Vertical.Get(); ok {
		s := string(p)
		ft.Simple.Vertical = &s
	}
	if p, ok := t.Cross.Get(); ok {
		s := string(p)
		ft.Simple.Cross = &s
	}
	ft.Edges = thGlyphMap(t.Edges[:], sideNames[:])
	ft.Dividers = thGlyphMap(t.Dividers[:], dividerNames[:])
	ft.Junctions = thGlyphMap(t.Junctions[:], junctionNames[:])
	return ft
}

func thGlyphMap(glyphs []Glyph, names []string) map[string]string {
	m := map[string]string{}
	for i, g := range glyphs {
		if p, ok := g.Get(); ok {
			m[names[i]] = string(p)
		}
	}
	return m
}

// thValidateTheme checks that a theme has a name and that no glyph row
// contains control characters, which would break column alignment.
func thValidateTheme(t Theme) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	check := func(field string, g Glyph) error {
		p, ok := g.Get()
		if !ok {
			return nil
		}
		for _, row := range p.Rows() {
			for _, r := range row {
				if r < 0x20 || r == 0x7F {
					return fmt.Errorf("theme: control character %U in %q", r, field)
				}
			}
		}
		return nil
	}
	fields := map[string]Glyph{
		"simple.horizontal": t.Horizontal,
		"simple.vertical":   t.Vertical,
		"simple.cross":      t.Cross,
	}
	for i, g := range t.Edges {
		fields["edges."+sideNames[i]] = g
	}
	for i, g := range t.Dividers {
		fields["dividers."+dividerNames[i]] = g
	}
	for i, g := range t.Junctions {
		fields["junctions."+junctionNames[i]] = g
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := check(k, fields[k]); err != nil {
			return err
		}
	}
	return nil
}
