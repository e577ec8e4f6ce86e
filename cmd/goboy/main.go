package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/profile"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
	"github.com/thelolagemann/gomeboy-core/pkg/web"
	"gonum.org/v1/plot/vg"
)

func main() {
	var logger = log.New()

	bootROM := flag.String("boot", "", "The boot rom file to load")
	romFile := flag.String("rom", "", "The rom file to load")
	steps := flag.Int("steps", 0, "The number of instructions to execute, 0 runs until an error or interrupt")
	debug := flag.Bool("debug", false, "Trace every executed instruction")
	saveState := flag.String("state", "", "The file to save the state to once the run ends")
	loadState := flag.String("load", "", "The state file to resume from")
	profilePath := flag.String("profile", "", "The file to write a cycle profile chart to")
	serve := flag.String("serve", "", "The address to stream memory snapshots on, e.g. :8090")
	flag.Parse()

	if *bootROM == "" && *romFile == "" {
		logger.Errorf("no boot or rom file given")
		flag.Usage()
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Errorf("loading boot rom: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *romFile != "" {
		rom, err := utils.LoadFile(*romFile)
		if err != nil {
			logger.Errorf("loading rom: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithCartridge(rom))

		// without a boot rom, start from the state it leaves behind
		if *bootROM == "" {
			opts = append(opts, gameboy.SkipBoot())
		}
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	if *loadState != "" {
		s, err := types.StateFromFile(*loadState)
		if err != nil {
			logger.Errorf("loading state: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithState(s))
	}

	var p *profile.Profile
	if *profilePath != "" {
		p = profile.New()
		opts = append(opts, gameboy.WithInstructionHook(p.Record))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var srv *http.Server
	if *serve != "" {
		hub := web.NewHub(logger)
		go hub.Run(ctx)
		opts = append(opts, web.Stream(hub))

		srv = &http.Server{Addr: *serve, Handler: hub}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("serving snapshots: %v", err)
				cancel()
			}
		}()
		logger.Infof("streaming snapshots on %s", *serve)
	}

	gb, err := gameboy.New(opts...)
	if err != nil {
		logger.Errorf("creating gameboy: %v", err)
		os.Exit(1)
	}

	var interrupted atomic.Bool
	go func() {
		<-ctx.Done()
		interrupted.Store(true)
	}()

	start := time.Now()
	n, runErr := gb.RunUntil(interrupted.Load, *steps)
	logger.Infof("executed %d instructions (%d cycles) in %s, PC=%04X", n, gb.Cycles(), time.Since(start), gb.CPU.PC)
	if runErr != nil {
		logger.Errorf("%v", runErr)
	}

	if *saveState != "" {
		if err := gb.SaveState().SaveToFile(*saveState); err != nil {
			logger.Errorf("saving state: %v", err)
			runErr = err
		}
	}
	if p != nil {
		if err := p.Save(*profilePath, 8*vg.Inch, 4*vg.Inch); err != nil {
			logger.Errorf("saving profile: %v", err)
			runErr = err
		}
	}
	if srv != nil {
		shutdown, done := context.WithTimeout(context.Background(), 5*time.Second)
		srv.Shutdown(shutdown)
		done()
	}

	if runErr != nil {
		os.Exit(1)
	}
}
