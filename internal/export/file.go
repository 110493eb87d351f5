package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"relief/internal/core"
)

// ErrUnknownFormat reports an output path whose extension has no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

// Sink receives the products of one generation run.
type Sink interface {
	WriteHeight(g *core.HeightGrid) error
	WriteColor(img *image.RGBA) error
}

type encodeFunc func(w io.Writer) error

// FileSink writes images to disk, picking the encoder from the file
// extension. Empty paths are skipped.
type FileSink struct {
	// HeightPath accepts .pgm (P2) and .png (16-bit gray).
	HeightPath string
	// ColorPath accepts .ppm (P3), .png, .bmp, .tif and .tiff.
	ColorPath string
	// PreviewPath takes the same formats as ColorPath.
	PreviewPath string
	PreviewSize int

	Log *slog.Logger
}

// Validate checks every configured extension so a bad path fails before any
// generation work.
func (s *FileSink) Validate() error {
	if s.HeightPath != "" {
		if _, err := heightEncoder(s.HeightPath, nil); err != nil {
			return err
		}
	}
	for _, p := range []string{s.ColorPath, s.PreviewPath} {
		if p == "" {
			continue
		}
		if _, err := colorEncoder(p, nil); err != nil {
			return err
		}
	}
	return nil
}

// WriteHeight exports the raw heightfield.
func (s *FileSink) WriteHeight(g *core.HeightGrid) error {
	if s.HeightPath == "" {
		return nil
	}
	enc, err := heightEncoder(s.HeightPath, g)
	if err != nil {
		return err
	}
	if err := WriteFile(s.HeightPath, enc); err != nil {
		return fmt.Errorf("write heightmap: %w", err)
	}
	s.logger().Info("wrote heightmap", "path", s.HeightPath, "side", g.Side())
	return nil
}

// WriteColor exports the shaded render and, when configured, its preview.
func (s *FileSink) WriteColor(img *image.RGBA) error {
	if s.ColorPath != "" {
		enc, err := colorEncoder(s.ColorPath, img)
		if err != nil {
			return err
		}
		if err := WriteFile(s.ColorPath, enc); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		s.logger().Info("wrote image", "path", s.ColorPath, "bounds", img.Bounds().String())
	}
	if s.PreviewPath != "" {
		small := Preview(img, s.PreviewSize)
		enc, err := colorEncoder(s.PreviewPath, small)
		if err != nil {
			return err
		}
		if err := WriteFile(s.PreviewPath, enc); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		s.logger().Info("wrote preview", "path", s.PreviewPath, "bounds", small.Bounds().String())
	}
	return nil
}

func (s *FileSink) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

func heightEncoder(path string, g *core.HeightGrid) (encodeFunc, error) {
	switch ext(path) {
	case ".pgm":
		return func(w io.Writer) error { return WritePGM(w, g) }, nil
	case ".png":
		return func(w io.Writer) error { return png.Encode(w, HeightImage(g)) }, nil
	}
	return nil, fmt.Errorf("%w: heightmap %q (want .pgm or .png)", ErrUnknownFormat, path)
}

func colorEncoder(path string, img image.Image) (encodeFunc, error) {
	switch ext(path) {
	case ".ppm":
		return func(w io.Writer) error { return WritePPM(w, img) }, nil
	case ".png":
		return func(w io.Writer) error { return png.Encode(w, img) }, nil
	case ".bmp":
		return func(w io.Writer) error { return bmp.Encode(w, img) }, nil
	case ".tif", ".tiff":
		return func(w io.Writer) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}, nil
	}
	return nil, fmt.Errorf("%w: image %q (want .ppm, .png, .bmp or .tiff)", ErrUnknownFormat, path)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// WriteFile writes through a temporary file in the target directory and
// renames it into place, so path never holds a partial image. The result is
// world-readable (0644) like a file from os.Create.
func WriteFile(path string, enc func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = enc(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
