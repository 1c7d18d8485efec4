package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/audio"
	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/core"
	"github.com/lixenwraith/simon/engine"
	"github.com/lixenwraith/simon/input"
	"github.com/lixenwraith/simon/render"
)

const (
	logDir      = "logs"
	logFileName = "simon.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug log to logs/simon.log")
	wavFlag   = flag.String("wav", "", "Record every tone to a WAV file")
	muteFlag  = flag.Bool("mute", false, "Disable the sound device")
	unitFlag  = flag.Duration("unit", constants.DefaultTimeUnit, "Length of one time-unit")
)

// setupLogging routes the std logger to a rotated file in debug mode and discards it otherwise.
// The terminal belongs to the game, so nothing is ever logged to stdout or stderr.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("simon-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *unitFlag <= 0 {
		return fmt.Errorf("invalid time-unit %v", *unitFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	canvas := render.NewCanvas(screen, constants.ScreenWidth, constants.ScreenHeight)
	canvas.SetBacklight(constants.DefaultBacklight)

	kb := input.NewKeyboard(screen, input.DefaultKeyTable(), constants.KeyQueueSize)
	kb.OnQuit(cancel)
	kb.OnResize(screen.Sync)
	core.Go(kb.Run)

	var clock engine.Clock = engine.NewTimeProvider()
	cfg := audio.LoadAudioConfig()

	var outputs []audio.ToneOutput
	if !*muteFlag {
		spk := audio.NewSpeaker(cfg)
		if err := spk.Initialize(); err != nil {
			log.Printf("audio unavailable: %v (continuing without sound)", err)
		} else {
			defer spk.Close()
			outputs = append(outputs, spk)
		}
	}
	if *wavFlag != "" {
		rec := audio.NewRecorder(*wavFlag, clock, cfg)
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("recording %s: %v", *wavFlag, err)
			}
		}()
		outputs = append(outputs, rec)
	}

	icons := render.NewIconRenderer(canvas, audio.Multi(outputs...), clock, core.Timebase(*unitFlag))

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>32|1))
	session := engine.NewSession(icons, kb, rng, engine.DefaultSessionConfig())
	menu := engine.NewMenu(icons, kb, session, clock, constants.MenuPollInterval)

	log.Printf("simon: started, time-unit %v, seed %d", *unitFlag, seed)
	err = menu.Run(ctx)
	icons.Quiet()

	if errors.Is(err, context.Canceled) {
		log.Printf("simon: quit")
		return nil
	}
	return err
}
