// Package content provides the placeholder image and caption generators.
// The descriptor shapes are the contract a real AI integration must honor;
// everything else here only simulates one.
package content

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Kind selects what a generation request produces.
type Kind string

const (
	KindImage   Kind = "image"
	KindCaption Kind = "caption"
	KindBoth    Kind = "both"
)

// ParseKind validates a requested generation type, substituting fallback for
// an empty value.
func ParseKind(name string, fallback Kind) (Kind, error) {
	switch Kind(name) {
	case "":
		return fallback, nil
	case KindImage, KindCaption, KindBoth:
		return Kind(name), nil
	}
	return "", fmt.Errorf("content: unknown generation type %q", name)
}

// ImageDescriptor describes one generated image.
type ImageDescriptor struct {
	URL         string `json:"url"`
	Prompt      string `json:"prompt"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	GeneratedAt string `json:"generated_at"`
}

// CaptionDescriptor describes one generated caption.
type CaptionDescriptor struct {
	Text        string  `json:"text"`
	Prompt      string  `json:"prompt"`
	Confidence  float64 `json:"confidence"`
	GeneratedAt string  `json:"generated_at"`
}

// Result bundles whichever descriptors a request asked for.
type Result struct {
	Image   *ImageDescriptor   `json:"image,omitempty"`
	Caption *CaptionDescriptor `json:"caption,omitempty"`
}

var captionTemplates = []string{
	"A creative interpretation of %q showcasing vibrant colors and dynamic composition.",
	"An artistic representation featuring %q with modern aesthetic elements.",
	"A compelling visual narrative inspired by %q with attention to detail and atmosphere.",
	"An imaginative scene depicting %q in a contemporary artistic style.",
}

// Options configures the mock generator. Delays default to the latencies of
// the service this placeholder stands in for.
type Options struct {
	ImageDelay   time.Duration
	CaptionDelay time.Duration
	Rand         *rand.Rand
}

// Generator synthesizes placeholder image and caption descriptors after a
// simulated latency. Safe for concurrent use.
type Generator struct {
	imageDelay   time.Duration
	captionDelay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator constructs a generator with sane defaults.
func NewGenerator(opts Options) *Generator {
	imageDelay := opts.ImageDelay
	if imageDelay <= 0 {
		imageDelay = time.Second
	}
	captionDelay := opts.CaptionDelay
	if captionDelay <= 0 {
		captionDelay = 800 * time.Millisecond
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{imageDelay: imageDelay, captionDelay: captionDelay, rng: rng}
}

// Generate produces the descriptors requested by kind. For KindBoth the two
// simulated waits run concurrently, so the total latency is the slower of
// the two rather than their sum.
func (g *Generator) Generate(ctx context.Context, prompt string, kind Kind) (*Result, error) {
	var res Result
	eg, ctx := errgroup.WithContext(ctx)
	if kind == KindImage || kind == KindBoth {
		eg.Go(func() error {
			image, err := g.GenerateImage(ctx, prompt)
			if err != nil {
				return err
			}
			res.Image = image
			return nil
		})
	}
	if kind == KindCaption || kind == KindBoth {
		eg.Go(func() error {
			caption, err := g.GenerateCaption(ctx, prompt)
			if err != nil {
				return err
			}
			res.Caption = caption
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

// GenerateImage returns a placeholder 512x512 PNG descriptor whose URL
// embeds the first 50 characters of the prompt.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) (*ImageDescriptor, error) {
	if err := wait(ctx, g.imageDelay); err != nil {
		return nil, err
	}
	short := prompt
	if len(short) > 50 {
		short = short[:50]
	}
	return &ImageDescriptor{
		URL:         "https://via.placeholder.com/512x512/4f46e5/ffffff?text=" + url.QueryEscape(short),
		Prompt:      prompt,
		Width:       512,
		Height:      512,
		Format:      "png",
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GenerateCaption returns one of four template captions parameterized by the
// prompt, with a confidence sampled uniformly from [0.85, 0.95).
func (g *Generator) GenerateCaption(ctx context.Context, prompt string) (*CaptionDescriptor, error) {
	if err := wait(ctx, g.captionDelay); err != nil {
		return nil, err
	}
	g.mu.Lock()
	text := fmt.Sprintf(captionTemplates[g.rng.Intn(len(captionTemplates))], prompt)
	confidence := 0.85 + g.rng.Float64()*0.1
	g.mu.Unlock()
	return &CaptionDescriptor{
		Text:        text,
		Prompt:      prompt,
		Confidence:  confidence,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
