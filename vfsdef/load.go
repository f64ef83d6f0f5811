package vfsdef

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/vshell/internal/util"
	"github.com/brettbedarf/vshell/vfs"
)

// LoadFile reads a tree description from disk, picking the format by file
// extension (.csv, .json, .yaml/.yml). The tree label defaults to the file's
// base name without extension.
func LoadFile(path string) (*vfs.Tree, error) {
	logger := util.GetLogger("vfsdef.LoadFile")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	logger.Debug().Str("path", path).Str("format", ext).Msg("Loading tree description")
	switch ext {
	case ".csv":
		return FromCSV(bytes.NewReader(data), label)
	case ".json":
		return FromJSON(data, label)
	case ".yaml", ".yml":
		return FromYAML(data, label)
	default:
		return nil, fmt.Errorf("unknown description file extension: %s", path)
	}
}
