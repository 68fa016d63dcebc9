package content

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func testGenerator() *Generator {
	return NewGenerator(Options{
		ImageDelay:   20 * time.Millisecond,
		CaptionDelay: 15 * time.Millisecond,
		Rand:         rand.New(rand.NewSource(1)),
	})
}

func TestParseKind(t *testing.T) {
	if kind, err := ParseKind("", KindBoth); err != nil || kind != KindBoth {
		t.Fatalf("ParseKind empty = %v, %v", kind, err)
	}
	if kind, err := ParseKind("image", KindBoth); err != nil || kind != KindImage {
		t.Fatalf("ParseKind image = %v, %v", kind, err)
	}
	if _, err := ParseKind("video", KindBoth); err == nil {
		t.Fatalf("ParseKind video should fail")
	}
}

func TestGenerateImage(t *testing.T) {
	g := testGenerator()
	img, err := g.GenerateImage(context.Background(), "A beautiful sunset over mountains")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if img.Width != 512 || img.Height != 512 || img.Format != "png" {
		t.Fatalf("descriptor = %+v", img)
	}
	if img.Prompt != "A beautiful sunset over mountains" {
		t.Fatalf("prompt = %q", img.Prompt)
	}
	if !strings.Contains(img.URL, "via.placeholder.com") {
		t.Fatalf("url = %q", img.URL)
	}
	if img.GeneratedAt == "" {
		t.Fatalf("generated_at missing")
	}
}

func TestGenerateImageTruncatesLongPrompt(t *testing.T) {
	g := testGenerator()
	long := strings.Repeat("x", 80)
	img, err := g.GenerateImage(context.Background(), long)
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if !strings.HasSuffix(img.URL, strings.Repeat("x", 50)) {
		t.Fatalf("url should embed only the first 50 characters: %q", img.URL)
	}
	if img.Prompt != long {
		t.Fatalf("prompt should keep the full text")
	}
}

func TestGenerateCaption(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 20; i++ {
		caption, err := g.GenerateCaption(context.Background(), "a red bicycle")
		if err != nil {
			t.Fatalf("GenerateCaption: %v", err)
		}
		if !strings.Contains(caption.Text, `"a red bicycle"`) {
			t.Fatalf("caption does not mention prompt: %q", caption.Text)
		}
		if caption.Confidence < 0.85 || caption.Confidence >= 0.95 {
			t.Fatalf("confidence out of range: %v", caption.Confidence)
		}
	}
}

func TestGenerateBothRunsConcurrently(t *testing.T) {
	g := NewGenerator(Options{
		ImageDelay:   80 * time.Millisecond,
		CaptionDelay: 70 * time.Millisecond,
	})

	start := time.Now()
	res, err := g.Generate(context.Background(), "concurrency check", KindBoth)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Image == nil || res.Caption == nil {
		t.Fatalf("result = %+v, want both descriptors", res)
	}
	// Far below the 150ms the two waits would take back to back.
	if elapsed >= 140*time.Millisecond {
		t.Fatalf("elapsed = %v, waits did not overlap", elapsed)
	}
}

func TestGenerateSingleKinds(t *testing.T) {
	g := testGenerator()

	res, err := g.Generate(context.Background(), "p", KindImage)
	if err != nil {
		t.Fatalf("Generate image: %v", err)
	}
	if res.Image == nil || res.Caption != nil {
		t.Fatalf("image-only result = %+v", res)
	}

	res, err = g.Generate(context.Background(), "p", KindCaption)
	if err != nil {
		t.Fatalf("Generate caption: %v", err)
	}
	if res.Caption == nil || res.Image != nil {
		t.Fatalf("caption-only result = %+v", res)
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	g := NewGenerator(Options{ImageDelay: time.Second, CaptionDelay: time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := g.Generate(ctx, "p", KindBoth); err == nil {
		t.Fatalf("Generate should fail when the context expires")
	}
}
