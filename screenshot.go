package win

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The resulting PNG is written to the configured
// screenshot directory with a timestamped filename.
func (w *Window) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Window.Draw.
func (w *Window) flushScreenshots(screen *ebiten.Image) {
	if len(w.screenshotQueue) == 0 {
		return
	}
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	dir := w.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[win] screenshot: mkdir %s: %v\n", dir, err)
		return
	}

	img := readFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for i, label := range w.screenshotQueue {
		name := fmt.Sprintf("%s_%04d_%s.png", stamp, w.frames, sanitizeLabel(label))
		if i > 0 {
			name = fmt.Sprintf("%s_%04d_%s_%d.png", stamp, w.frames, sanitizeLabel(label), i)
		}
		if err := writePNG(filepath.Join(dir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[win] screenshot: %v\n", err)
		}
	}
}

// readFrame copies the screen into a straight-alpha image.
func readFrame(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*width*height)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	unpremultiply(img.Pix, pixels)
	return img
}

// unpremultiply converts premultiplied RGBA bytes in src to straight alpha
// in dst.
func unpremultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
