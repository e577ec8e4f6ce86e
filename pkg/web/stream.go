package web

import (
	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
)

// Stream returns an option that publishes a snapshot of the memory of
// the GameBoy to h each time it enters VBlank. The snapshot is taken
// on the goroutine stepping the GameBoy, between two instructions.
func Stream(h *Hub) gameboy.Opt {
	return func(gb *gameboy.GameBoy) {
		gameboy.WithVBlankHandler(func() {
			if !h.Publish(gb.Cycles(), gb.Snapshot(nil)) {
				gb.Debugf("web: snapshot at cycle %d dropped", gb.Cycles())
			}
		})(gb)
	}
}
