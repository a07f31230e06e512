package main

import (
	"fmt"
	"math"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/wippyai/gosfml/audio"
	"github.com/wippyai/gosfml/graphics"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

type probeResult struct {
	err    error
	name   string
	detail string
}

// probes create and release one object family each.
var probes = []struct {
	name string
	fn   func(rt *runtime.Runtime) (string, error)
}{
	{"clock", probeClock},
	{"image", probeImage},
	{"font+text", probeText},
	{"soundbuffer", probeSoundBuffer},
	{"shape", probeShape},
	{"rendertexture", probeRenderTexture},
}

func probe(rt *runtime.Runtime) []probeResult {
	out := make([]probeResult, 0, len(probes))
	for _, p := range probes {
		detail, err := p.fn(rt)
		out = append(out, probeResult{name: p.name, detail: detail, err: err})
	}
	return out
}

func probeClock(rt *runtime.Runtime) (string, error) {
	c, err := system.NewClock(rt)
	if err != nil {
		return "", err
	}
	defer c.Close()
	return fmt.Sprintf("elapsed %s", c.ElapsedTime()), nil
}

func probeImage(rt *runtime.Runtime) (string, error) {
	img, err := graphics.NewImageFromColor(rt, 4, 4, graphics.Red)
	if err != nil {
		return "", err
	}
	defer img.Close()

	cp, err := img.Copy()
	if err != nil {
		return "", err
	}
	defer cp.Close()
	cp.SetPixel(0, 0, graphics.Blue)

	if img.Pixel(0, 0) != graphics.Red {
		return "", fmt.Errorf("copy shares pixels with its source")
	}
	size := img.Size()
	return fmt.Sprintf("%dx%d, copy independent", size.X, size.Y), nil
}

func probeText(rt *runtime.Runtime) (string, error) {
	font, err := graphics.NewFontFromMemory(rt, goregular.TTF)
	if err != nil {
		return "", err
	}
	family := font.Family()
	text, err := graphics.NewTextInit(rt, "probe", font, 24)
	if err != nil {
		font.Close()
		return "", err
	}
	// the text borrows the font; closing the font first must be refused
	if err := font.Close(); err == nil {
		text.Close()
		return "", fmt.Errorf("font closed while borrowed")
	}
	if err := text.Close(); err != nil {
		return "", err
	}
	if err := font.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("family %q", family), nil
}

func probeSoundBuffer(rt *runtime.Runtime) (string, error) {
	const rate = 44100
	samples := make([]int16, rate/10)
	for i := range samples {
		samples[i] = int16(8000 * math.Sin(2*math.Pi*440*float64(i)/rate))
	}
	buf, err := audio.NewSoundBufferFromSamples(rt, samples, 1, rate)
	if err != nil {
		return "", err
	}
	defer buf.Close()
	return fmt.Sprintf("%d samples, %s", buf.SampleCount(), buf.Duration()), nil
}

type triangle struct{}

func (triangle) PointCount() int { return 3 }

func (triangle) Point(i int) system.Vector2f {
	return [3]system.Vector2f{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}[i]
}

func probeShape(rt *runtime.Runtime) (string, error) {
	s, err := graphics.NewShape(rt, triangle{})
	if err != nil {
		return "", err
	}
	defer s.Close()
	b := s.LocalBounds()
	return fmt.Sprintf("%d points, bounds %gx%g", s.PointCount(), b.Width, b.Height), nil
}

func probeRenderTexture(rt *runtime.Runtime) (string, error) {
	rtex, err := graphics.NewRenderTexture(rt, 16, 16, false)
	if err != nil {
		return "", err
	}
	defer rtex.Close()
	rect, err := graphics.NewRectangleShape(rt, system.Vector2f{X: 4, Y: 4})
	if err != nil {
		return "", err
	}
	defer rect.Close()

	rtex.Clear(graphics.Green)
	rtex.Draw(rect)
	rtex.Display()
	img, err := rtex.Texture().CopyToImage()
	if err != nil {
		return "", err
	}
	defer img.Close()
	size := img.Size()
	return fmt.Sprintf("%dx%d, corner %v", size.X, size.Y, img.Pixel(15, 15)), nil
}
