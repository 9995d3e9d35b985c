package preview

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/artlab/internal/design"
	"github.com/san-kum/artlab/internal/raster"
)

func fieldLines(t *testing.T, out string) []string {
	t.Helper()
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestTextScatter(t *testing.T) {
	k := design.NewKaleidoscope()
	if err := k.SetParam("limit", 64); err != nil {
		t.Fatalf("SetParam: %v", err)
	}

	out, err := Text(k, 80)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(out, "stopping times for n < 64") {
		t.Errorf("chart caption missing from output:\n%s", out)
	}
}

func TestTextUndulations(t *testing.T) {
	u := design.NewUndulations()
	if err := u.SetParam("columns", 8); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if err := u.SetParam("rows", 4); err != nil {
		t.Fatalf("SetParam: %v", err)
	}

	out, err := Text(u, 80)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	lines := fieldLines(t, out)
	if len(lines) != 4 {
		t.Fatalf("got %d rows, want 4", len(lines))
	}
	drawn := false
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) != 16 {
			t.Errorf("row %d is %d cells wide, want 16", i, len(runes))
		}
		for _, r := range runes {
			if r != 0x2800 {
				drawn = true
			}
		}
	}
	if !drawn {
		t.Error("needle field is blank")
	}
}

func TestTextSamplesWideFieldsToFit(t *testing.T) {
	out, err := Text(design.NewUndulations(), 80)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	lines := fieldLines(t, out)
	if len(lines) != 22 {
		t.Fatalf("got %d rows, want 22 after sampling 44 grid rows by 2", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n > 80 {
			t.Errorf("row %d is %d cells wide, want at most 80", i, n)
		}
	}
}

func TestTextConnections(t *testing.T) {
	c := design.NewConnections()
	if err := c.SetParam("columns", 6); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if err := c.SetParam("rows", 4); err != nil {
		t.Fatalf("SetParam: %v", err)
	}

	out, err := Text(c, 80)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	parts := strings.Split(out, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("got %d needle fields, want one per wedge family", len(parts))
	}
	for fi, part := range parts {
		lines := fieldLines(t, part)
		if len(lines) != 4 {
			t.Errorf("field %d has %d rows, want 4", fi, len(lines))
		}
	}
}

func TestTextTooNarrow(t *testing.T) {
	if _, err := Text(design.NewUndulations(), MinCols-1); err == nil {
		t.Fatal("expected an error for a terminal below the minimum width")
	}
}

type flatDesign struct{}

func (flatDesign) Slug() string           { return "flat" }
func (flatDesign) Title() string          { return "Flat" }
func (flatDesign) Describe() string       { return "nothing" }
func (flatDesign) Background() color.RGBA { return color.RGBA{A: 0xFF} }
func (flatDesign) Window() raster.Window  { return raster.Window{X1: 1, Y1: 1} }

func (flatDesign) Compose(*raster.Painter, raster.Viewport) error { return nil }

func TestTextUnknownDesign(t *testing.T) {
	if _, err := Text(flatDesign{}, 80); err == nil {
		t.Fatal("expected an error for a design without a terminal view")
	}
}

func TestSpanFieldSkipsClosedSpans(t *testing.T) {
	c := design.NewConnections()
	if err := c.SetParam("columns", 2); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if err := c.SetParam("rows", 2); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	red, _, err := c.Grids()
	if err != nil {
		t.Fatalf("Grids: %v", err)
	}

	f := spanField{red}
	deg, ok := f.Needle(0, 0)
	if !ok || deg != 200 {
		t.Errorf("Needle(0,0) = %v, %v; want the 200 degree bisector", deg, ok)
	}
	if _, ok := f.Needle(0, 1); ok {
		t.Error("Needle(0,1) drew a needle for a closed span")
	}
}
