// Package display shows cover images either inline in the terminal or in
// the platform image viewer.
package display

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/mattn/go-isatty"
)

// EnvForceInline forces inline rendering when set to "1".
const EnvForceInline = "BOOKCOVER_INLINE"

// Renderer displays raw image bytes.
type Renderer interface {
	Render(data []byte) error
}

// InlineRenderer writes images inline using the iTerm2 image protocol.
type InlineRenderer struct {
	Out io.Writer
}

// Render writes data as an OSC 1337 inline file sequence.
func (r InlineRenderer) Render(data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	_, err := fmt.Fprintf(r.Out, "\033]1337;File=inline=1;size=%d:%s\a\n", len(data), encoded)
	return err
}

// WindowRenderer decodes the image and opens it in a viewer window.
type WindowRenderer struct {
	// Dir holds the temporary image file; empty means os.TempDir.
	Dir string
	// Open launches the viewer; nil uses the platform default.
	Open func(path string) error
}

// Render decodes data, saves it as PNG and hands the file to the viewer.
// Decode errors are returned as-is.
func (r WindowRenderer) Render(data []byte) error {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decoding cover image: %w", err)
	}

	file, err := os.CreateTemp(r.Dir, "bookcover-*.png")
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	path := file.Name()
	if err := file.Close(); err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving image file: %w", err)
	}

	open := r.Open
	if open == nil {
		open = openViewer
	}

	slog.Debug("Opening cover in viewer", "path", path)
	return open(path)
}

var openViewer = func(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching image viewer: %w", err)
	}
	return nil
}

// SupportsInline reports whether inline images can be rendered: output must
// be a terminal that speaks the iTerm2 image protocol, unless forced.
func SupportsInline(getenv func(string) string, isTerminal bool) bool {
	if getenv(EnvForceInline) == "1" {
		return true
	}
	if !isTerminal {
		return false
	}
	for _, key := range []string{"TERM_PROGRAM", "LC_TERMINAL"} {
		switch strings.ToLower(getenv(key)) {
		case "iterm.app", "iterm2", "wezterm":
			return true
		}
	}
	return false
}

// Select returns the renderer suited to the current process.
func Select() Renderer {
	if SupportsInline(os.Getenv, isatty.IsTerminal(os.Stdout.Fd())) {
		return InlineRenderer{Out: os.Stdout}
	}
	return WindowRenderer{}
}

// Auto is a Renderer that selects the concrete renderer on every call.
type Auto struct{}

// Render implements Renderer.
func (Auto) Render(data []byte) error {
	return Show(data)
}

// Show displays data with the renderer chosen at call time.
func Show(data []byte) error {
	return Select().Render(data)
}
