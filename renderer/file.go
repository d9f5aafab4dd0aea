package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RebelAKL/signgloss"
)

// FileRenderer writes a plain-text description of the gloss sequence keyed
// by asset ID and returns the file path as the asset reference. It stands in
// for a real sign-video backend; an asset-serving collaborator can resolve
// the returned path.
type FileRenderer struct {
	dir string
}

// NewFileRenderer creates a file renderer writing into dir, creating the
// directory if needed.
func NewFileRenderer(dir string) (*FileRenderer, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, &signgloss.RenderError{
			Message: "creating output directory",
			Cause:   err,
		}
	}
	return &FileRenderer{dir: dir}, nil
}

// Render writes "<assetID>.txt" describing the sign sequence. An empty gloss
// sequence still produces a (sign-less) asset.
func (r *FileRenderer) Render(ctx context.Context, gloss GlossSequence, assetID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &signgloss.RenderError{
			Message: "render cancelled",
			Cause:   err,
			AssetID: assetID,
		}
	}

	path := filepath.Join(r.dir, assetID+".txt")
	content := fmt.Sprintf("SIGNS: %s\n", strings.Join(gloss, " -> "))

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", &signgloss.RenderError{
			Message: "writing sign description",
			Cause:   err,
			AssetID: assetID,
		}
	}

	return path, nil
}

// Dir returns the output directory.
func (r *FileRenderer) Dir() string {
	return r.dir
}

// Verify FileRenderer implements Renderer
var _ Renderer = (*FileRenderer)(nil)
