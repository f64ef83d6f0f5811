package vfsdef

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/vshell"
	"github.com/brettbedarf/vshell/internal/util"
	"github.com/brettbedarf/vshell/vfs"
)

// NodeDef is the wire representation of a single tree entry in a JSON or
// YAML description. Pointer fields distinguish unset from empty.
type NodeDef struct {
	Path    string          `json:"path" yaml:"path"`
	Type    vshell.NodeKind `json:"type" yaml:"type"`
	Owner   *string         `json:"owner,omitempty" yaml:"owner,omitempty"`
	Content *string         `json:"content,omitempty" yaml:"content,omitempty"` // base64 payload; files only
}

// FromJSON builds a tree from a JSON array of node definitions.
func FromJSON(data []byte, label string) (*vfs.Tree, error) {
	var defs []NodeDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %v", vshell.ErrImportFormat, err)
	}
	return FromDefs(defs, label)
}

// FromYAML builds a tree from a YAML list of node definitions.
func FromYAML(data []byte, label string) (*vfs.Tree, error) {
	var defs []NodeDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %v", vshell.ErrImportFormat, err)
	}
	return FromDefs(defs, label)
}

// FromDefs applies node definitions to a fresh tree: directories first, then
// files, each group in definition order. Definition numbers in errors are
// 1-based.
func FromDefs(defs []NodeDef, label string) (*vfs.Tree, error) {
	logger := util.GetLogger("vfsdef.FromDefs")

	tree := vfs.New(label)

	var files []int
	for i, def := range defs {
		if def.Path == "" || !def.Type.Valid() {
			return nil, fmt.Errorf("%w: def %d: bad values", vshell.ErrImportFormat, i+1)
		}
		switch def.Type {
		case vshell.DirKind:
			if err := tree.AddDir(def.Path, valueOrDefault(def.Owner, vshell.DefaultOwner)); err != nil {
				return nil, err
			}
		case vshell.FileKind:
			files = append(files, i)
		}
	}

	for _, i := range files {
		def := defs[i]
		var content []byte
		if def.Content != nil && *def.Content != "" {
			var err error
			content, err = base64.StdEncoding.DecodeString(*def.Content)
			if err != nil {
				return nil, fmt.Errorf("%w: def %d: content not valid base64", vshell.ErrImportFormat, i+1)
			}
		}
		if err := tree.AddFile(def.Path, valueOrDefault(def.Owner, vshell.DefaultOwner), content); err != nil {
			return nil, err
		}
	}

	logger.Debug().Str("label", label).Int("defs", len(defs)).Msg("Loaded node definitions")
	return tree, nil
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
