package assets

import (
	"context"
	"image"
	"sync/atomic"
)

// Result is the outcome for one asset. When Fallback is set, Err holds the
// original failure and Image the substitute.
type Result struct {
	Name     string
	Image    image.Image
	Err      error
	Fallback bool
}

// Batch is an in-flight set of image loads. Done is closed once every asset
// has a result.
type Batch struct {
	names   []string
	results []Result
	loaded  atomic.Int32
	done    chan struct{}
	set     *TextureSet
}

func newBatch(names []string) *Batch {
	return &Batch{
		names:   names,
		results: make([]Result, len(names)),
		done:    make(chan struct{}),
	}
}

func (b *Batch) Done() <-chan struct{} { return b.done }

// Ready reports, without blocking, whether every asset has a result.
func (b *Batch) Ready() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Progress returns the finished fraction in [0, 1].
func (b *Batch) Progress() float64 {
	if len(b.names) == 0 {
		return 1
	}
	return float64(b.loaded.Load()) / float64(len(b.names))
}

// Wait blocks until the batch completes or ctx ends.
func (b *Batch) Wait(ctx context.Context) (*TextureSet, error) {
	select {
	case <-b.done:
		return b.set, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Results returns per-asset outcomes in request order. Nil until Ready.
func (b *Batch) Results() []Result {
	if !b.Ready() {
		return nil
	}
	return b.results
}

// Set returns the finished textures. Nil until Ready.
func (b *Batch) Set() *TextureSet {
	if !b.Ready() {
		return nil
	}
	return b.set
}
