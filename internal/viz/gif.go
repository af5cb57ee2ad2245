package viz

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
)

const (
	cellWidth  = 8
	cellHeight = 16
	frameDelay = 2
)

var ErrNoFrames = errors.New("viz: no frames recorded")

// Recorder rasterizes canvas snapshots into a looping GIF.
type Recorder struct {
	frames []*image.Paletted
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Capture renders every lit sub-pixel of c as a white dot block.
func (r *Recorder) Capture(c *Canvas) {
	imgW, imgH := c.Width*cellWidth, c.Height*cellHeight
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	dotW, dotH := cellWidth/2, cellHeight/4

	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Reset() { r.frames = r.frames[:0] }

// Encode writes the recorded frames as an infinitely looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, frameDelay)
	}
	return gif.EncodeAll(w, &anim)
}

// Save encodes the recording to path.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode gif %s: %w", path, err)
	}
	return f.Close()
}
