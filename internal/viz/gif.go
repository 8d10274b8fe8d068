package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"
)

// GIFRecorder collects canvas frames into an animated GIF.
type GIFRecorder struct {
	frames []*image.Paletted
}

func (g *GIFRecorder) Frames() int { return len(g.frames) }

// Capture rasterises c with 4x4 pixel dots.
func (g *GIFRecorder) Capture(c *Canvas) {
	const dot = 4
	img := image.NewPaletted(image.Rect(0, 0, c.SubWidth()*dot, c.SubHeight()*dot),
		color.Palette{color.Black, color.White})

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - blank)
			if pattern == 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					x0, y0 := (col*2+dx)*dot, (row*4+dy)*dot
					for py := 0; py < dot; py++ {
						for px := 0; px < dot; px++ {
							img.SetColorIndex(x0+px, y0+py, 1)
						}
					}
				}
			}
		}
	}
	g.frames = append(g.frames, img)
}

// Save writes the frames to path and forgets them.
func (g *GIFRecorder) Save(path string) error {
	if len(g.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gif.EncodeAll(f, &anim); err != nil {
		return err
	}
	g.frames = nil
	return nil
}
