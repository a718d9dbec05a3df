package assets

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pursuit/pursuer"
	"github.com/milk9111/pursuit/render"
)

//go:embed *.png
var assetsFS embed.FS

const (
	PursuerTexture = "pursuer.png"
	AvatarTexture  = "avatar.png"
)

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// DecodeImage decodes an embedded image without touching the GPU.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// PursuerTemplate returns the loader the controller awaits during Init.
func PursuerTemplate(tint render.TintFunc) pursuer.TemplateLoader {
	return func(ctx context.Context) (pursuer.Template, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := LoadImage(PursuerTexture)
		if err != nil {
			return nil, err
		}
		return render.NewTemplate(img, tint), nil
	}
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(filepath.ToSlash(path), "assets/")
}
