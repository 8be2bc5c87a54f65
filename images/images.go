// Package images maps menu item ids to display images with a fallback
// chain ending in the default food image, and generates thumbnails for
// uploaded menu photos.
package images

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

var menuPicDir = "./static/menupic"

const defaultImage = "default-food.jpg"

// Candidates returns the fallback chain for an item, most specific first.
// The last entry always exists on disk.
func Candidates(itemID string) []string {
	return []string{
		itemID + ".jpg",
		itemID + ".png",
		itemID + ".webp",
		defaultImage,
	}
}

// Resolve returns the serve path of the first candidate present on disk,
// falling back to the default image.
func Resolve(itemID string) string {
	for _, name := range Candidates(itemID) {
		if _, err := os.Stat(filepath.Join(menuPicDir, name)); err == nil {
			return "/static/menupic/" + name
		}
	}
	return "/static/menupic/" + defaultImage
}

// CreateThumb writes a width-constrained JPEG thumbnail next to the
// original, under a thumb/ subdirectory.
func CreateThumb(name, ext string, width int) (string, error) {
	src := filepath.Join(menuPicDir, name+ext)
	img, err := imaging.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %q: %w", src, err)
	}

	thumbImg := imaging.Resize(img, width, 0, imaging.Lanczos) // maintain aspect ratio

	thumbDir := filepath.Join(menuPicDir, "thumb")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return "", fmt.Errorf("create thumb dir: %w", err)
	}

	thumbPath := filepath.Join(thumbDir, name+".jpg")
	out, err := os.Create(thumbPath)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", thumbPath, err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, thumbImg, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	return thumbPath, nil
}
