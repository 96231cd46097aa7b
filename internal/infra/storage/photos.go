package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// PhotoDir finds contact images named "<lowercase name><ext>" in a directory.
type PhotoDir struct {
	dir string
	ext string
}

func NewPhotoDir(dir, ext string) *PhotoDir {
	return &PhotoDir{dir: dir, ext: ext}
}

// PhotoPath returns the image path for name if a regular file exists there.
func (p *PhotoDir) PhotoPath(name string) (string, bool) {
	if p.dir == "" || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	path := filepath.Join(p.dir, strings.ToLower(name)+p.ext)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}
