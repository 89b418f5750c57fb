package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cbegin/mvogen"
	"github.com/cbegin/mvogen/internal/genconfig"
	intscene "github.com/cbegin/mvogen/internal/scene"
	intscore "github.com/cbegin/mvogen/internal/score"
)

func main() {
	var (
		genMIDI    = flag.Bool("midi", false, "generate a MIDI file")
		genScene   = flag.Bool("scene", false, "open the interactive 3D scene viewer")
		preview    = flag.Bool("preview", false, "play an audio preview of the score")
		midiOut    = flag.String("o", "output.mid", "MIDI output path")
		wavOut     = flag.String("wav", "", "write the audio preview to a WAV file")
		configPath = flag.String("config", genconfig.DefaultPath, "preferences file")
		volume     = flag.Float64("volume", 1.0, "preview volume scalar")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Usage = usage
	flag.Parse()
	initLogger(*debug)

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	prefs, _ := genconfig.Load(*configPath)

	viewerCfg := intscene.DefaultViewerConfig()
	viewerCfg.Width = prefs.Viewer.Width
	viewerCfg.Height = prefs.Viewer.Height
	viewerCfg.ShowGrid = prefs.Viewer.ShowGrid
	viewerCfg.Title = "mvogen - " + filepath.Base(path)

	gen := mvogen.New(
		mvogen.WithScoreConfig(intscore.Config{
			Resolution: prefs.Resolution,
			Tempo:      prefs.Tempo,
			Velocity:   prefs.Velocity,
			Program:    prefs.Program,
			Channel:    0,
		}),
		mvogen.WithViewerConfig(viewerCfg),
	)

	records, err := mvogen.CompileFile(path)
	if err != nil {
		slog.Error("parse failed", "file", path, "err", err)
		os.Exit(1)
	}
	slog.Debug("parsed", "file", path, "records", len(records))

	if *genMIDI {
		slog.Info("generating MIDI", "from", path, "to", *midiOut)
		if err := gen.WriteMIDIFile(records, *midiOut); err != nil {
			slog.Error("MIDI write failed", "err", err)
			os.Exit(1)
		}
	}

	if *wavOut != "" {
		slog.Info("rendering preview WAV", "from", path, "to", *wavOut)
		samples := mvogen.RenderPreviewSamples(gen.BuildScore(records), prefs.SampleRate)
		wav := mvogen.EncodeWAVFloat32LE(samples, prefs.SampleRate, 2)
		if err := os.WriteFile(*wavOut, wav, 0644); err != nil {
			slog.Error("WAV write failed", "err", err)
			os.Exit(1)
		}
	}

	if *preview {
		pl, err := mvogen.NewPlayer(prefs.SampleRate)
		if err != nil {
			slog.Error("preview failed", "err", err)
			os.Exit(1)
		}
		pl.SetMasterVolume(*volume)
		if err := pl.Play(gen.BuildScore(records)); err != nil {
			slog.Error("preview failed", "err", err)
			os.Exit(1)
		}
		pl.Wait()
	}

	if *genScene {
		slog.Info("generating scene", "from", path)
		solids, err := gen.BuildScene(records)
		if err != nil {
			slog.Error("scene build failed", "err", err)
			os.Exit(1)
		}
		// Blocks until the viewer window is closed.
		gen.ShowScene(solids)
	}

	if !*genMIDI && !*genScene && !*preview && *wavOut == "" {
		slog.Info("parse only", "file", path, "records", len(records))
	}
}

// initLogger configures the shared slog logger so stdlib log also routes
// through the same handler.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(h))
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mvogen [flags] file.mvo\n\n")
	fmt.Fprintf(os.Stderr, "Generates a MIDI score and/or a 3D scene from an MVO file.\n\n")
	flag.PrintDefaults()
}
