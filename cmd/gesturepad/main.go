// Command gesturepad is a terminal drawing pad for collecting gesture
// samples and previewing their 28×28 rasterization.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gesturepad/internal/logging"
	"gesturepad/internal/parallel"
	"gesturepad/internal/tui"
)

func main() {
	var (
		dir     = flag.String("dir", "gestures", "gesture library directory")
		logPath = flag.String("log", "", "write logs to this file")
		verbose = flag.Bool("v", false, "debug logging (with -log)")
		workers = flag.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
		export  = flag.String("export", "preview.png", "preview PNG written by the e key")
		scale   = flag.Int("scale", 10, "pixel size of the exported preview")
	)
	flag.Parse()

	// The terminal belongs to the UI, so logs only go to a file.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		level := slog.LevelInfo
		if *verbose {
			level = slog.LevelDebug
		}
		logging.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}
	if *workers > 0 {
		parallel.SetWorkers(*workers)
	}

	cfg := tui.Config{Dir: *dir, ExportPath: *export, ExportScale: *scale}
	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithGesture(cfg, flag.Arg(0))
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
