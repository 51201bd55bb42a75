package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cbegin/notewave-go"
)

const defaultSong = "Cq Dq Eq Fq Gq Aq Bq [CEG]h"

func main() {
	var (
		notesInline = flag.String("notes", "", `inline note tokens (e.g. "Cq Dq [CEG]h Ebq")`)
		notesPath   = flag.String("file", "", "path to a file of note tokens")
		bpm         = flag.Float64("bpm", 120, "tempo in beats per minute")
		volume      = flag.Float64("volume", 0.5, "volume scalar (0-1)")
		outPath     = flag.String("out", "", "write the rendered song to this WAV file")
		quiet       = flag.Bool("quiet", false, "render without playing")
	)
	flag.Parse()

	text, err := resolveNotesInput(*notesPath, *notesInline)
	if err != nil {
		log.Fatal(err)
	}
	if *bpm <= 0 {
		log.Fatal("bpm must be positive")
	}
	if *volume < 0 || *volume > 1 {
		log.Fatal("volume must be between 0 and 1")
	}

	song, err := notewave.Render(strings.Fields(text), *bpm, *volume,
		notewave.WithDiagnostic(func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		}))
	if err != nil {
		log.Fatal(err)
	}

	if *outPath != "" {
		if err := notewave.ExportWAV(*outPath, song); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("saved %s\n", *outPath)
	}
	if !*quiet {
		pl := notewave.NewPlayer()
		if err := pl.Play(song); err != nil {
			log.Fatal(err)
		}
		pl.Wait()
	}
}

func resolveNotesInput(path string, inline string) (string, error) {
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return defaultSong, nil
}
