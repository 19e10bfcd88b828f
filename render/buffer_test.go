package render

import (
	"testing"

	"github.com/lixenwraith/vi-maze/core"
)

var red = RGB{R: 255}

func countColor(b *PixelBuffer, c RGB) int {
	w, h := b.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestPixelBufferStartsBlack(t *testing.T) {
	b := NewPixelBuffer(4, 3)
	if n := countColor(b, RGBBlack); n != 12 {
		t.Errorf("Expected 12 black pixels, got %d", n)
	}
	if c := b.At(-1, 0); c != RGBBlack {
		t.Errorf("Expected black outside bounds, got %v", c)
	}
}

func TestPixelBufferClear(t *testing.T) {
	b := NewPixelBuffer(8, 4)
	b.Apply([]Command{Clear(red)})
	if n := countColor(b, red); n != 32 {
		t.Errorf("Expected 32 red pixels, got %d", n)
	}
}

func TestPixelBufferRect(t *testing.T) {
	b := NewPixelBuffer(10, 10)
	b.Apply([]Command{Rect(2, 3, 4, 2, red.Opaque())})

	if n := countColor(b, red); n != 8 {
		t.Errorf("Expected 8 red pixels, got %d", n)
	}
	if b.At(2, 3) != red || b.At(5, 4) != red {
		t.Error("Expected rect corners filled")
	}
	if b.At(6, 3) == red || b.At(2, 5) == red {
		t.Error("Expected exclusive far edges")
	}
}

func TestPixelBufferRectClipped(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	b.Apply([]Command{Rect(-10, -10, 100, 100, red.Opaque())})
	if n := countColor(b, red); n != 16 {
		t.Errorf("Expected full coverage, got %d", n)
	}

	b.Fill(RGBBlack)
	b.Apply([]Command{Rect(50, 50, 5, 5, red.Opaque())})
	if n := countColor(b, red); n != 0 {
		t.Errorf("Expected no coverage, got %d", n)
	}
}

func TestPixelBufferSubPixelRect(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	b.Apply([]Command{Rect(1.1, 2.2, 0.2, 0.2, red.Opaque())})
	if b.At(1, 2) != red {
		t.Error("Expected sub-pixel rect to mark its center pixel")
	}
	if n := countColor(b, red); n != 1 {
		t.Errorf("Expected 1 pixel, got %d", n)
	}
}

func TestPixelBufferAlpha(t *testing.T) {
	b := NewPixelBuffer(2, 1)
	b.Apply([]Command{
		Clear(core.RGBWhite),
		Rect(0, 0, 1, 1, RGBA{RGB: RGBBlack, A: 0.8}),
	})
	got := b.At(0, 0)
	want := core.RGBWhite.Blend(RGBBlack, 0.8)
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if b.At(1, 0) != core.RGBWhite {
		t.Error("Expected untouched pixel to stay white")
	}
}

func TestPixelBufferDisc(t *testing.T) {
	b := NewPixelBuffer(20, 20)
	b.Apply([]Command{Disc(10, 10, 4, red.Opaque())})

	if b.At(10, 10) != red {
		t.Error("Expected center filled")
	}
	if b.At(10, 3) == red || b.At(0, 0) == red {
		t.Error("Expected outside pixels untouched")
	}
	// Area of r=4 is ~50 pixels
	if n := countColor(b, red); n < 40 || n > 60 {
		t.Errorf("Expected ~50 pixels, got %d", n)
	}
}

func TestPixelBufferTinyDisc(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	b.Apply([]Command{Disc(2.9, 1.1, 0.1, red.Opaque())})
	if b.At(2, 1) != red {
		t.Error("Expected tiny disc to mark its center pixel")
	}
}

func TestPixelBufferResize(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	b.Apply([]Command{Clear(red)})
	b.Resize(2, 2)
	if w, h := b.Size(); w != 2 || h != 2 {
		t.Errorf("Expected 2x2, got %dx%d", w, h)
	}
	if n := countColor(b, red); n != 0 {
		t.Errorf("Expected cleared buffer after resize, got %d red", n)
	}
	if b.At(5, 5) != RGBBlack {
		t.Error("Expected black out of bounds")
	}
}
