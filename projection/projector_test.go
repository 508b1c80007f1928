package projection

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/gamearea"
	"github.com/lixenwraith/gamearea/graphics"
	"github.com/lixenwraith/gamearea/status"
)

// stubSource returns one image per level filled with the level digit
type stubSource struct {
	size     core.Size3D
	failAt   int
	err      error
	calls    []core.Point3D
	revision uint64
}

func (s *stubSource) Size() core.Size3D { return s.size }

func (s *stubSource) SegmentAt(offset core.Point3D, size core.Size) (gamearea.Segment, error) {
	s.calls = append(s.calls, offset)
	if s.err != nil && offset.Z == s.failAt {
		return gamearea.Segment{}, s.err
	}
	img := graphics.NewTextImage(size)
	img.Fill(graphics.NewCell(rune('0'+offset.Z), tcell.ColorWhite, tcell.ColorBlack))
	return gamearea.Segment{Layers: []*graphics.TextImage{img}}, nil
}

func (s *stubSource) Revision() uint64 { return s.revision }

func request(src *stubSource, z, levels int, size core.Size) Request {
	return Request{
		Offset:        core.Point3D{Z: z},
		VirtualSize:   src.size,
		VisibleLevels: levels,
		Size:          size,
		Position:      core.Point{X: 4, Y: 2},
	}
}

func topRune(t *testing.T, l graphics.Layer) rune {
	t.Helper()
	c, ok := l.Image.Get(0, 0)
	if !ok {
		t.Fatalf("Expected cell at (0,0) in %v image", l.Image.Size())
	}
	return c.Rune
}

func TestProjectOrdering(t *testing.T) {
	src := &stubSource{size: core.Size3D{Width: 10, Height: 10, Levels: 3}}
	p := New(src, TopDown)

	layers, err := p.Project(request(src, 0, 3, core.Size{Width: 5, Height: 4}))
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(layers) != 3 {
		t.Fatalf("Expected 3 layers, got %d", len(layers))
	}
	for i, l := range layers {
		if got := topRune(t, l); got != rune('0'+i) {
			t.Errorf("Layer %d: expected level %d content, got %q", i, i, got)
		}
		if l.Offset != (core.Point{X: 4, Y: 2}) {
			t.Errorf("Layer %d: expected anchor (4,2), got %v", i, l.Offset)
		}
		if l.Image.Size() != (core.Size{Width: 5, Height: 4}) {
			t.Errorf("Layer %d: expected unchanged size, got %v", i, l.Image.Size())
		}
	}
}

func TestProjectLevelWindowClampedToDepth(t *testing.T) {
	src := &stubSource{size: core.Size3D{Width: 10, Height: 10, Levels: 4}}
	p := New(src, TopDown)

	layers, err := p.Project(request(src, 2, 5, core.Size{Width: 1, Height: 1}))
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("Expected 2 layers (levels 2,3), got %d", len(layers))
	}
	for _, c := range src.calls {
		if c.Z >= 4 {
			t.Errorf("Expected no read past depth, got level %d", c.Z)
		}
	}
}

func TestProjectEmpty(t *testing.T) {
	tests := []struct {
		name    string
		levels  int
		start   int
		visible int
	}{
		{"start past depth", 3, 3, 3},
		{"far past depth", 3, 10, 2},
		{"zero depth", 0, 0, 5},
		{"zero visible levels", 3, 0, 0},
		{"negative visible levels", 3, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &stubSource{size: core.Size3D{Width: 4, Height: 4, Levels: tt.levels}}
			layers, err := New(src, TopDown).Project(request(src, tt.start, tt.visible, core.Size{Width: 4, Height: 4}))
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(layers) != 0 {
				t.Errorf("Expected empty projection, got %d layers", len(layers))
			}
			if len(src.calls) != 0 {
				t.Errorf("Expected no source reads, got %d", len(src.calls))
			}
		})
	}
}

func TestProjectIsometricCrop(t *testing.T) {
	src := &stubSource{size: core.Size3D{Width: 10, Height: 10, Levels: 5}}
	p := New(src, Isometric)
	const h = 3

	layers, err := p.Project(request(src, 0, 5, core.Size{Width: 6, Height: h}))
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(layers) != 5 {
		t.Fatalf("Expected 5 layers, got %d", len(layers))
	}
	for level, l := range layers {
		want := max(h-level, 0)
		if got := l.Image.Size().Height; got != want {
			t.Errorf("Level %d: expected height %d, got %d", level, want, got)
		}
		if want == 0 && !l.Image.Empty() {
			t.Errorf("Level %d: expected empty image", level)
		}
		if l.Offset != (core.Point{X: 4, Y: 2}) {
			t.Errorf("Level %d: expected shared anchor, got %v", level, l.Offset)
		}
	}
}

func TestTransformIsometricKeepsLowerRows(t *testing.T) {
	img := graphics.NewTextImage(core.Size{Width: 2, Height: 3})
	for y := 0; y < 3; y++ {
		img.Set(0, y, graphics.NewCell(rune('a'+y), tcell.ColorWhite, tcell.ColorBlack))
	}

	out := Transform(img, 1, Isometric)
	if out.String() != "b \nc " {
		t.Errorf("Expected rows b,c, got %q", out.String())
	}
	if Transform(img, 1, TopDown) != img {
		t.Error("Expected TopDown to return the image unchanged")
	}
}

func TestProjectErrorAbortsPass(t *testing.T) {
	boom := errors.New("disk gone")
	src := &stubSource{size: core.Size3D{Width: 4, Height: 4, Levels: 5}, failAt: 1, err: boom}
	reg := status.NewRegistry()
	p := New(src, TopDown)
	p.SetMetrics(reg)

	layers, err := p.Project(request(src, 0, 5, core.Size{Width: 2, Height: 2}))
	if err != boom {
		t.Fatalf("Expected source error returned unchanged, got %v", err)
	}
	if layers != nil {
		t.Errorf("Expected no layers on failure, got %d", len(layers))
	}
	if len(src.calls) != 2 {
		t.Errorf("Expected iteration to stop after failing level, got %d calls", len(src.calls))
	}
	if got := reg.Counters.Get("projection.errors").Load(); got != 1 {
		t.Errorf("Expected 1 error counted, got %d", got)
	}
}

func TestProjectMultiLayerSegment(t *testing.T) {
	area, err := gamearea.NewMemoryArea(core.Size3D{Width: 3, Height: 3, Levels: 2}, 2)
	if err != nil {
		t.Fatalf("NewMemoryArea failed: %v", err)
	}
	g := graphics.NewCell('g', tcell.ColorGreen, tcell.ColorBlack)
	tr := graphics.NewCell('T', tcell.ColorGreen, tcell.ColorDefault)
	area.SetBlockAt(core.Point3D{X: 0, Y: 0, Z: 0}, gamearea.NewBlock(g, tr))
	area.SetBlockAt(core.Point3D{X: 1, Y: 0, Z: 1}, gamearea.NewBlock(g))

	layers, err := New(area, TopDown).Project(Request{
		VirtualSize:   area.Size(),
		VisibleLevels: 2,
		Size:          core.Size{Width: 3, Height: 1},
	})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	// Two block layers per level, two levels
	if len(layers) != 4 {
		t.Fatalf("Expected 4 layers, got %d", len(layers))
	}
	want := []string{"g  ", "T  ", " g ", "   "}
	for i, l := range layers {
		if l.Image.String() != want[i] {
			t.Errorf("Layer %d: expected %q, got %q", i, want[i], l.Image.String())
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"top_down", TopDown, false},
		{"ISOMETRIC", Isometric, false},
		{" isometric ", Isometric, false},
		{"", TopDown, false},
		{"oblique", TopDown, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseMode(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q): expected ErrUnknownMode, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if TopDown.Next() != Isometric || Isometric.Next() != TopDown {
		t.Error("Expected Next to cycle between modes")
	}
	if Mode(9).String() != "Mode(9)" {
		t.Errorf("Expected fallback name, got %q", Mode(9).String())
	}
}
