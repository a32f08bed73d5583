package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	log "github.com/sirupsen/logrus"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// DirSurface writes each chart to <dir>/<name>.svg. Useful when there is no
// display to show charts on.
type DirSurface struct {
	dir string
}

func NewDirSurface(dir string) (*DirSurface, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: no output directory", ErrPresentationUnavailable)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPresentationUnavailable, err)
	}
	return &DirSurface{dir: dir}, nil
}

func (d *DirSurface) Show(name, title string, svg []byte) error {
	file := unsafeNameChars.ReplaceAllString(name, "_")
	if file == "" {
		return fmt.Errorf("invalid chart name: '%s'", name)
	}
	path := filepath.Join(d.dir, file+".svg")
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("error writing chart %s: %w", name, err)
	}
	log.WithFields(log.Fields{"chart": name, "path": path}).Info("chart written")
	return nil
}
