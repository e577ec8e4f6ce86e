// Package profile records how many instructions of each kind a CPU
// executed and the cycles they took, and renders the result as a bar
// chart.
package profile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrEmpty is returned when plotting a profile with no samples.
var ErrEmpty = errors.New("profile: no instructions recorded")

// Entry holds the totals of a single instruction kind.
type Entry struct {
	Kind   cpu.Kind
	Count  uint64
	Cycles uint64
}

// Profile accumulates per-kind totals. Record has the signature of a
// cpu.Hook, so a Profile is attached with gameboy.WithInstructionHook.
type Profile struct {
	entries map[cpu.Kind]*Entry
	count   uint64
	cycles  uint64

	mu sync.Mutex
}

// New returns an empty Profile.
func New() *Profile {
	return &Profile{entries: make(map[cpu.Kind]*Entry)}
}

// Record adds an executed instruction to the profile.
func (p *Profile) Record(pc uint16, opcode uint8, ins cpu.Instruction, cycles int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.entries[ins.Kind]
	if !ok {
		e = &Entry{Kind: ins.Kind}
		p.entries[ins.Kind] = e
	}
	e.Count++
	e.Cycles += uint64(cycles)

	p.count++
	p.cycles += uint64(cycles)
}

// Total returns the number of instructions recorded and the cycles
// they took.
func (p *Profile) Total() (count, cycles uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count, p.cycles
}

// Entries returns the recorded kinds, most expensive first.
func (p *Profile) Entries() []Entry {
	p.mu.Lock()
	entries := make([]Entry, 0, len(p.entries))
	for _, e := range p.entries {
		entries = append(entries, *e)
	}
	p.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Cycles != entries[j].Cycles {
			return entries[i].Cycles > entries[j].Cycles
		}
		return entries[i].Kind < entries[j].Kind
	})
	return entries
}

// Plot returns a bar chart of the cycles spent in each kind.
func (p *Profile) Plot() (*plot.Plot, error) {
	entries := p.Entries()
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Cycles)
		names[i] = e.Kind.String()
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotter.DefaultLineStyle.Color

	_, cycles := p.Total()
	chart := plot.New()
	chart.Title.Text = fmt.Sprintf("Cycles by instruction (%d total)", cycles)
	chart.Y.Label.Text = "Cycles"
	chart.Add(bars)
	chart.NominalX(names...)
	chart.X.Tick.Label.Rotation = math.Pi / 2
	chart.X.Tick.Label.XAlign = draw.XRight
	chart.X.Tick.Label.YAlign = draw.YCenter

	return chart, nil
}

// WritePNG renders the profile as a width x height PNG to w.
func (p *Profile) WritePNG(w io.Writer, width, height vg.Length) error {
	chart, err := p.Plot()
	if err != nil {
		return err
	}

	c := vgimg.New(width, height)
	chart.Draw(draw.New(c))
	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// Save renders the profile to a file. The image format is taken from
// the extension of filename.
func (p *Profile) Save(filename string, width, height vg.Length) error {
	chart, err := p.Plot()
	if err != nil {
		return err
	}
	return chart.Save(width, height, filename)
}
