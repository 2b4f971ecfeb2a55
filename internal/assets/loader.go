package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// maxParallelDecodes caps how many images are decoded at once.
const maxParallelDecodes = 4

// Loader decodes named images from a directory in the background.
type Loader struct {
	Dir string
	// Open is used to read an asset. Nil means the file Dir/name.
	Open func(name string) (io.ReadCloser, error)
}

// NewLoader создает загрузчик для каталога dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

func (l *Loader) open(name string) (io.ReadCloser, error) {
	if l.Open != nil {
		return l.Open(name)
	}
	return os.Open(filepath.Join(l.Dir, name))
}

func (l *Loader) decode(ctx context.Context, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := l.open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", name, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", name, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("texture %s is empty", name)
	}
	log.Printf("Decoded texture %s (%s, %dx%d)", name, format, b.Dx(), b.Dy())
	return img, nil
}

// Load starts decoding every name and returns immediately. A failed image
// does not stop the others; it is replaced with a fallback when the batch
// completes, so the batch always completes.
func (l *Loader) Load(ctx context.Context, names []string) *Batch {
	b := newBatch(names)
	go func() {
		defer close(b.done)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelDecodes)
		for i, name := range names {
			i, name := i, name
			g.Go(func() error {
				img, err := l.decode(gctx, name)
				b.results[i] = Result{Name: name, Image: img, Err: err}
				b.loaded.Add(1)
				return nil
			})
		}
		_ = g.Wait()

		b.set = newTextureSet()
		for i := range b.results {
			r := &b.results[i]
			if r.Err != nil {
				r.Image = Fallback(r.Name)
				r.Fallback = true
			}
			b.set.put(r.Name, r.Image, r.Fallback)
		}
	}()
	return b
}
