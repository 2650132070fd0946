package uohues

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/uohues/hue"
	"github.com/ericpauley/go-quantize/quantize"
)

const (
	matchColors  = 16
	matchWorkers = 4
)

// Copied from color.sqDiff
func sqDiff(x, y uint32) uint32 {
	d := x - y
	return (d * d) >> 2
}

func distance(c1, c2 color.Color) uint32 {
	r1, g1, b1, _ := c1.RGBA()
	r2, g2, b2, _ := c2.RGBA()
	return sqDiff(r1, r2) + sqDiff(g1, g2) + sqDiff(b1, b2)
}

// Score a hue against a palette as the sum over the palette of the distance
// to the nearest gradient step, then keep the lowest scoring hue.
func closestHue(hues []hue.Hue, p color.Palette) (hue.Hue, uint64) {
	var best hue.Hue
	bestSum := uint64(math.MaxUint64)
	for _, h := range hues {
		var sum uint64
		for _, c := range p {
			nearest := uint32(math.MaxUint32)
			for _, step := range h.ColorsRGB {
				if d := distance(c, step); d < nearest {
					nearest = d
				}
			}
			sum += uint64(nearest)
		}
		if sum < bestSum {
			bestSum, best = sum, h
		}
	}
	return best, bestSum
}

func matchImage(hues []hue.Hue, file string) (hue.Hue, error) {
	f, err := os.Open(file)
	if err != nil {
		return hue.Hue{}, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return hue.Hue{}, err
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, matchColors), m)

	h, _ := closestHue(hues, p)

	return h, nil
}

func isImage(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

func findImages(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

type match struct {
	file string
	hue  hue.Hue
}

func matchWorker(ctx context.Context, hues []hue.Hue, in <-chan string, out chan<- match, wg *sync.WaitGroup, logger *log.Logger) <-chan error {
	wg.Add(1)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer wg.Done()
		for file := range in {
			h, err := matchImage(hues, file)
			if err != nil {
				logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}

			select {
			case out <- match{file, h}:
			case <-ctx.Done():
				errc <- errors.New("match cancelled")
				return
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Match finds the hue whose gradient best covers each image under path,
// which is either a single image or a directory tree of them, and writes one
// result line per image to w. The hue table is read from mulFile.
func Match(w io.Writer, mulFile, path string, logger *log.Logger) error {
	hues, err := hue.DecodeFile(mulFile)
	if err != nil {
		return err
	}
	if len(hues) == 0 {
		return ErrNoHues
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		h, err := matchImage(hues, path)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s: %s\n", path, h)
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	files, errc := findImages(ctx, path)
	errcList := []<-chan error{errc}

	results := make(chan match)

	var wg sync.WaitGroup
	for i := 0; i < matchWorkers; i++ {
		errcList = append(errcList, matchWorker(ctx, hues, files, results, &wg, logger))
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	pipeline := make(chan error, 1)
	go func() {
		pipeline <- waitForPipeline(errcList...)
	}()

	for r := range results {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.file, r.hue); err != nil {
			return err
		}
	}

	return <-pipeline
}
