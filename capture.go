package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// capture writes the back buffer to a PNG in the screenshot directory.
// It must run after rendering and before the buffers are swapped.
func (a *Application) capture() (string, error) {
	width, height := a.window.FramebufferSize()
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("cannot capture a %dx%d framebuffer", width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img)

	name := screenshotName(time.Now())
	path := filepath.Join(a.cfg.Render.ScreenshotDir, name)
	if err := savePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// flipRows turns bottom-up GL rows into top-down image rows.
func flipRows(img *image.NRGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func screenshotName(t time.Time) string {
	return fmt.Sprintf("gltriangle-%s.png", t.Format("20060102-150405.000"))
}

// createFile opens the destination of a screenshot.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func savePNG(path string, img image.Image) (err error) {
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			os.Remove(path)
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(file, img); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
