package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Get / Names / Register ---

func TestGetSingle(t *testing.T) {
	th := Get("single")
	if th.Name != "single" {
		t.Errorf("Get(\"single\").Name = %q, want %q", th.Name, "single")
	}
	if got := th.Junction(TopLeft); got != "┌" {
		t.Errorf("Get(\"single\").Junction(TopLeft) = %q, want %q", got, "┌")
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	if th := Get("DOUBLE"); th.Name != "double" {
		t.Errorf("Get(\"DOUBLE\").Name = %q, want %q", th.Name, "double")
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	th := Get("unknown-theme-xyz")
	def := Default()
	if th.Name != def.Name {
		t.Errorf("Get(\"unknown\") = %q, want %q (default)", th.Name, def.Name)
	}
	if _, ok := Lookup("unknown-theme-xyz"); ok {
		t.Error("Lookup(\"unknown\") reported ok")
	}
}

func TestDefaultIsBuiltOnce(t *testing.T) {
	def := Default()
	if def.Name != "single" {
		t.Fatalf("Default().Name = %q, want single", def.Name)
	}
	_ = def.WithEdge(Top, "x")
	if Default() != def {
		t.Error("modifying a copy changed Default()")
	}

	orig, _ := Lookup("single")
	t.Cleanup(func() { thRegister(orig) })
	if err := Register(Theme{Name: "single", Horizontal: Some("~")}); err != nil {
		t.Fatal(err)
	}
	if Default() != def {
		t.Error("registering a theme named single changed Default()")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"ascii", "block3d", "dashed", "double", "heavy", "none", "rounded", "single"}
	if len(names) < len(want) {
		t.Fatalf("Names() returned %d themes, want at least %d", len(names), len(want))
	}
	for _, w := range want {
		if _, ok := Lookup(w); !ok {
			t.Errorf("builtin %q not registered", w)
		}
	}
}

func TestRegisterRejectsUnnamed(t *testing.T) {
	if err := Register(Theme{}); err == nil {
		t.Error("Register(Theme{}) should fail without a name")
	}
}

func TestRegisterCustom(t *testing.T) {
	custom := Theme{Name: "Custom-Test", Horizontal: Some("~")}
	if err := Register(custom); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := Get("custom-test").Edge(Top); got != "~" {
		t.Errorf("registered theme Edge(Top) = %q, want %q", got, "~")
	}
}

// --- Pattern / Glyph ---

func TestPatternRows(t *testing.T) {
	tests := []struct {
		p     Pattern
		rows  []string
		first string
	}{
		{"-", []string{"-"}, "-"},
		{"", []string{""}, ""},
		{Stack("═", "─"), []string{"═", "─"}, "═"},
		{"a\n\nb", []string{"a", "", "b"}, "a"},
	}
	for _, tt := range tests {
		rows := tt.p.Rows()
		if strings.Join(rows, "|") != strings.Join(tt.rows, "|") {
			t.Errorf("%q.Rows() = %q, want %q", tt.p, rows, tt.rows)
		}
		if got := tt.p.RowCount(); got != len(tt.rows) {
			t.Errorf("%q.RowCount() = %d, want %d", tt.p, got, len(tt.rows))
		}
		if got := tt.p.FirstRow(); got != tt.first {
			t.Errorf("%q.FirstRow() = %q, want %q", tt.p, got, tt.first)
		}
	}
}

func TestGlyphZeroValueIsUnset(t *testing.T) {
	var g Glyph
	if g.IsSet() {
		t.Error("zero Glyph reports set")
	}
	if got := g.Or("x"); got != "x" {
		t.Errorf("zero Glyph.Or(x) = %q, want x", got)
	}
	// An explicitly empty pattern is still set.
	if !Some("").IsSet() {
		t.Error("Some(\"\") should be set")
	}
}

// --- Fallback chains ---

func TestZeroThemeResolvesEverything(t *testing.T) {
	var th Theme
	for s := Side(0); s < numSides; s++ {
		if th.Edge(s).RowCount() < 1 || th.Edge(s) == "" {
			t.Errorf("Edge(%s) empty", s)
		}
	}
	for d := DividerKind(0); d < numDividers; d++ {
		if th.Divider(d) == "" {
			t.Errorf("Divider(%s) empty", d)
		}
	}
	for j := JunctionKind(0); j < numJunctions; j++ {
		if got := th.Junction(j); got != DefaultJunction {
			t.Errorf("Junction(%s) = %q, want %q", j, got, DefaultJunction)
		}
	}
	if th.Edge(Top) != DefaultHorizontal || th.Edge(Left) != DefaultVertical {
		t.Errorf("zero theme edges = %q/%q", th.Edge(Top), th.Edge(Left))
	}
}

func TestEdgeSimpleModeFallback(t *testing.T) {
	th := Theme{Horizontal: Some("="), Vertical: Some("!")}
	if got := th.Edge(Bottom); got != "=" {
		t.Errorf("Edge(Bottom) = %q, want =", got)
	}
	if got := th.Edge(Right); got != "!" {
		t.Errorf("Edge(Right) = %q, want !", got)
	}
	th = th.WithEdge(Bottom, "_")
	if got := th.Edge(Bottom); got != "_" {
		t.Errorf("Edge(Bottom) override = %q, want _", got)
	}
	if got := th.Edge(Top); got != "=" {
		t.Errorf("Edge(Top) = %q, want =", got)
	}
}

func TestDividerFallbackChain(t *testing.T) {
	th := Theme{Horizontal: Some("h"), Vertical: Some("v")}
	if got := th.Divider(RowDivider); got != "h" {
		t.Errorf("Divider(Row) with only simple mode = %q, want h", got)
	}
	th = th.WithDivider(SectionDivider, "s")
	if got := th.Divider(RowDivider); got != "s" {
		t.Errorf("Divider(Row) -> Section = %q, want s", got)
	}
	th = th.WithDivider(HeaderDivider, "H")
	if got := th.Divider(RowDivider); got != "H" {
		t.Errorf("Divider(Row) -> Header = %q, want H", got)
	}
	if got := th.Divider(SectionDivider); got != "s" {
		t.Errorf("Divider(Section) = %q, want s", got)
	}
	if got := th.Divider(ColumnDivider); got != "v" {
		t.Errorf("Divider(Column) = %q, want v", got)
	}
}

func TestJunctionFallbackChain(t *testing.T) {
	th := Theme{Cross: Some("x")}
	if got := th.Junction(RowLeft); got != "x" {
		t.Errorf("Junction(RowLeft) = %q, want simple cross", got)
	}
	th = th.WithJunction(SectionLeft, "S")
	if got := th.Junction(RowLeft); got != "S" {
		t.Errorf("Junction(RowLeft) -> SectionLeft = %q, want S", got)
	}
	th = th.WithJunction(HeaderLeft, "H")
	if got := th.Junction(RowLeft); got != "H" {
		t.Errorf("Junction(RowLeft) -> HeaderLeft = %q, want H", got)
	}
	th = th.WithJunction(RowLeft, "R")
	if got := th.Junction(RowLeft); got != "R" {
		t.Errorf("Junction(RowLeft) = %q, want R", got)
	}
	// Right-hand chain is independent of the left one.
	if got := th.Junction(RowRight); got != "x" {
		t.Errorf("Junction(RowRight) = %q, want x", got)
	}
	th = th.WithJunction(SectionCross, "+")
	if got := th.Junction(SectionDown); got != "+" {
		t.Errorf("Junction(SectionDown) = %q, want +", got)
	}
	if got := th.Junction(TopColumn); got != "x" {
		t.Errorf("Junction(TopColumn) = %q, want x", got)
	}
}

func TestResolutionPreservesRows(t *testing.T) {
	th := Get("block3d")
	if got := th.Edge(Top); got.RowCount() != 2 || got.FirstRow() != "═" {
		t.Errorf("block3d Edge(Top) = %q, want two rows starting with ═", got)
	}
	if got := th.Junction(TopLeft); got != Stack("╔", "╟") {
		t.Errorf("block3d Junction(TopLeft) = %q", got)
	}
}

func TestAllBuiltinsResolveNonEmpty(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		t.Run(name, func(t *testing.T) {
			for j := JunctionKind(0); j < numJunctions; j++ {
				if th.Junction(j).FirstRow() == "" {
					t.Errorf("Junction(%s) has empty first row", j)
				}
			}
			if th.Divider(ColumnDivider).FirstRow() == "" {
				t.Error("column divider has empty first row")
			}
		})
	}
}

// --- TOML / YAML ---

const thTestTOML = `
name = "retro"
row_lines = true

[simple]
horizontal = "-"
vertical = "|"

[edges]
top = "=\n-"

[dividers]
header = "~"

[junctions]
top_left = "#\n|"
row_cross = "*"
`

func TestLoadFromTOML(t *testing.T) {
	th, err := LoadFromTOML([]byte(thTestTOML))
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if th.Name != "retro" || !th.RowLines {
		t.Errorf("name/row_lines = %q/%v", th.Name, th.RowLines)
	}
	if got := th.Edge(Top); got != Stack("=", "-") {
		t.Errorf("Edge(Top) = %q", got)
	}
	if got := th.Divider(RowDivider); got != "~" {
		t.Errorf("Divider(Row) = %q, want ~", got)
	}
	if got := th.Junction(RowCross); got != "*" {
		t.Errorf("Junction(RowCross) = %q, want *", got)
	}
	if th.Cross.IsSet() {
		t.Error("simple cross should stay unset")
	}
	if got := th.Junction(SectionCross); got != DefaultJunction {
		t.Errorf("Junction(SectionCross) = %q, want default", got)
	}
}

func TestLoadFromTOMLErrors(t *testing.T) {
	tests := map[string]string{
		"bad syntax":       `name = `,
		"missing name":     `row_lines = true`,
		"unknown junction": "name = \"x\"\n[junctions]\nnowhere = \"+\"",
		"unknown key":      "name = \"x\"\ncolour = \"red\"",
		"control char":     "name = \"x\"\n[edges]\ntop = \"\\t\"",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFromTOML([]byte(doc)); err == nil {
				t.Error("expected error")
			} else if !strings.HasPrefix(err.Error(), "theme:") {
				t.Errorf("error %q lacks theme: prefix", err)
			}
		})
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	for _, name := range []string{"single", "block3d", "dashed"} {
		orig := Get(name)
		data, err := SaveToTOML(orig)
		if err != nil {
			t.Fatalf("SaveToTOML(%s): %v", name, err)
		}
		back, err := LoadFromTOML(data)
		if err != nil {
			t.Fatalf("LoadFromTOML(%s): %v\n%s", name, err, data)
		}
		if back != orig {
			t.Errorf("%s: round trip mismatch\n got %+v\nwant %+v", name, back, orig)
		}
	}
}

func TestLoadFromYAML(t *testing.T) {
	doc := `
name: yamly
simple:
  cross: "o"
edges:
  left: "["
  right: "]"
dividers:
  column: ":"
`
	th, err := LoadFromYAML([]byte(doc))
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if th.Edge(Left) != "[" || th.Edge(Right) != "]" {
		t.Errorf("edges = %q %q", th.Edge(Left), th.Edge(Right))
	}
	if th.Divider(ColumnDivider) != ":" {
		t.Errorf("column divider = %q", th.Divider(ColumnDivider))
	}
	if th.Junction(HeaderCross) != "o" {
		t.Errorf("HeaderCross = %q, want o", th.Junction(HeaderCross))
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	orig := Get("block3d")
	data, err := SaveToYAML(orig)
	if err != nil {
		t.Fatalf("SaveToYAML: %v", err)
	}
	back, err := LoadFromYAML(data)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if back != orig {
		t.Errorf("round trip mismatch\n got %+v\nwant %+v", back, orig)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "retro.toml"), []byte(thTestTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "y.yml"), []byte("name: dir-yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	names, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("LoadDir registered %v, want 2 themes", names)
	}
	if _, ok := Lookup("dir-yaml"); !ok {
		t.Error("dir-yaml not registered")
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile(.json) should fail")
	}
}
