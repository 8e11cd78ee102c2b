// Command gesturerast rasterizes every drawing of a gesture library into
// 28×28 grayscale PNGs, laid out as <out>/<gesture>/<index>.png.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"gesturepad/internal/geom"
	"gesturepad/internal/logging"
	"gesturepad/internal/parallel"
	"gesturepad/internal/raster"
	"gesturepad/internal/store"
)

func main() {
	var (
		dir     = flag.String("dir", "gestures", "gesture library directory")
		out     = flag.String("out", "raster", "output directory")
		scale   = flag.Int("scale", 1, "pixel size of each grid cell")
		workers = flag.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
		gesture = flag.String("gesture", "", "only rasterize this gesture")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if *workers > 0 {
		parallel.SetWorkers(*workers)
	}

	lib, err := store.Open(*dir)
	if err != nil {
		log.Fatalf("open library: %v", err)
	}
	names := []string{*gesture}
	if *gesture == "" {
		if names, err = lib.Names(); err != nil {
			log.Fatalf("list gestures: %v", err)
		}
	}

	total := 0
	for _, name := range names {
		n, err := rasterizeGesture(lib, name, *out, *scale)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		total += n
	}
	log.Printf("wrote %d images for %d gestures to %s", total, len(names), *out)
}

// rasterizeGesture writes one PNG per drawing of name and returns the count.
func rasterizeGesture(lib *store.Library, name, out string, scale int) (int, error) {
	ds, err := lib.Load(name)
	if err != nil {
		return 0, err
	}
	dst := filepath.Join(out, name)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, err
	}

	var g errgroup.Group
	g.SetLimit(parallel.Workers())
	for i, d := range ds {
		g.Go(func() error {
			return writePNG(filepath.Join(dst, strconv.Itoa(i)+".png"), d, scale)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	logging.Logger().Info("gesture rasterized", "gesture", name, "drawings", len(ds))
	return len(ds), nil
}

func writePNG(path string, d *geom.Drawing, scale int) error {
	grid := raster.Preview(d)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := raster.EncodePNG(f, &grid, scale); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	logging.Logger().Debug("wrote", "path", path, "points", d.Len())
	return f.Close()
}
