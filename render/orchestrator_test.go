package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

type recordingRenderer struct {
	name  string
	order *[]string
}

func (r *recordingRenderer) Render(ctx Context, frame *Frame) {
	*r.order = append(*r.order, r.name)
}

type hiddenRenderer struct{ recordingRenderer }

func (hiddenRenderer) IsVisible() bool { return false }

type fakeLayers struct {
	layers []graphics.Layer
	err    error
	bounds core.Area
}

func (f *fakeLayers) TransformToLayers() ([]graphics.Layer, error) { return f.layers, f.err }
func (f *fakeLayers) Bounds() core.Area { return f.bounds }

func newScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	var order []string
	o := NewOrchestrator(newScreen(t, 10, 4))
	o.Register(&recordingRenderer{"status", &order}, PriorityStatus)
	o.Register(&recordingRenderer{"game", &order}, PriorityGameArea)
	o.Register(&recordingRenderer{"bg", &order}, PriorityBackground)
	o.Register(&recordingRenderer{"game2", &order}, PriorityGameArea)
	o.Register(&hiddenRenderer{recordingRenderer{"hidden", &order}}, PriorityOverlay)

	o.RenderFrame(graphics.DefaultTheme())

	if got := strings.Join(order, ","); got != "bg,game,game2,status" {
		t.Errorf("Expected bg,game,game2,status, got %s", got)
	}
}

func TestGameAreaRendererComposites(t *testing.T) {
	screen := newScreen(t, 6, 3)
	src := &fakeLayers{
		layers: []graphics.Layer{
			solidLayer('g', core.Size{Width: 2, Height: 2}, core.Point{X: 1, Y: 0}),
			solidLayer('T', core.Size{Width: 1, Height: 1}, core.Point{X: 2, Y: 1}),
		},
		bounds: core.Area{X: 1, Y: 0, Width: 2, Height: 2},
	}
	gr := NewGameAreaRenderer(src)
	o := NewOrchestrator(screen)
	o.Register(gr, PriorityGameArea)

	o.RenderFrame(graphics.DefaultTheme())

	if gr.LayerCount() != 2 || gr.Err() != nil {
		t.Errorf("Expected 2 layers without error, got %d, %v", gr.LayerCount(), gr.Err())
	}
	if r, _, _, _ := screen.GetContent(2, 1); r != 'T' {
		t.Errorf("Expected 'T' on top, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected blank outside layers, got %q", r)
	}
}

func TestGameAreaRendererErrorBlanks(t *testing.T) {
	screen := newScreen(t, 4, 2)
	boom := errors.New("source down")
	src := &fakeLayers{err: boom}
	gr := NewGameAreaRenderer(src)
	o := NewOrchestrator(screen)
	o.Register(gr, PriorityGameArea)

	o.RenderFrame(graphics.DefaultTheme())

	if gr.Err() != boom {
		t.Errorf("Expected error recorded, got %v", gr.Err())
	}
	if o.Frame().Touched(0, 0) {
		t.Error("Expected nothing drawn on failure")
	}
}

func TestGameAreaRendererDim(t *testing.T) {
	screen := newScreen(t, 2, 1)
	img := graphics.NewTextImage(core.Size{Width: 1, Height: 1})
	img.Set(0, 0, graphics.NewCell('x', tcell.NewRGBColor(200, 100, 50), tcell.NewRGBColor(100, 100, 100)))
	src := &fakeLayers{
		layers: []graphics.Layer{graphics.NewLayer(img, core.Point{})},
		bounds: core.Area{Width: 2, Height: 1},
	}
	gr := NewGameAreaRenderer(src)
	gr.SetDim(0.5)
	o := NewOrchestrator(screen)
	o.Register(gr, PriorityGameArea)

	o.RenderFrame(graphics.DefaultTheme())

	c := o.Frame().Get(0, 0)
	if r, g, b := c.Fg.RGB(); r != 100 || g != 50 || b != 25 {
		t.Errorf("Expected halved foreground, got %d,%d,%d", r, g, b)
	}
}

func TestStatusRenderer(t *testing.T) {
	screen := newScreen(t, 8, 3)
	sr := NewStatusRenderer(func() string { return "z=1" })
	o := NewOrchestrator(screen)
	o.Register(sr, PriorityStatus)

	o.RenderFrame(graphics.DefaultTheme())
	if r, _, _, _ := screen.GetContent(2, 2); r != '1' {
		t.Errorf("Expected status text on last row, got %q", r)
	}

	sr.SetVisible(false)
	o.RenderFrame(graphics.DefaultTheme())
	if r, _, _, _ := screen.GetContent(2, 2); r != ' ' {
		t.Errorf("Expected hidden status, got %q", r)
	}
}

func TestOrchestratorResize(t *testing.T) {
	screen := newScreen(t, 4, 2)
	o := NewOrchestrator(screen)
	screen.SetSize(10, 5)
	o.Resize()
	if o.Frame().Size() != (core.Size{Width: 10, Height: 5}) {
		t.Errorf("Expected frame resized to 10x5, got %v", o.Frame().Size())
	}
}
