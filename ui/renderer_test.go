package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadSpriteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), AppleImageFile)
	tex, err := loadSprite(path, 20, 20)
	if err == nil {
		t.Fatal("missing sprite loaded")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("error %v does not wrap the missing file", err)
	}
	if tex.ID != 0 {
		t.Errorf("missing sprite produced texture %d", tex.ID)
	}
}
