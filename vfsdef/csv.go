// Package vfsdef builds VFS trees from declarative descriptions. The
// tabular CSV format is the primary one; JSON and YAML node-definition
// lists are also accepted. A description either loads completely or not at
// all: the first bad row aborts the load and no partial tree is returned.
package vfsdef

import (
	"encoding/base64"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/vshell"
	"github.com/brettbedarf/vshell/internal/util"
	"github.com/brettbedarf/vshell/vfs"
)

// Required CSV header columns. The content column is optional.
var requiredColumns = []string{"path", "type", "owner"}

// FromCSV builds a tree from a comma-separated description. The header row
// must contain at least path,type,owner; a content column, when present,
// holds the file payload base64-encoded. Rows are applied strictly in file
// order. Row numbers in errors are 1-based counting the header as row 1.
func FromCSV(r io.Reader, label string) (*vfs.Tree, error) {
	logger := util.GetLogger("vfsdef.FromCSV")

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows read as empty optional fields

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: need path,type,owner[,content]", vshell.ErrImportFormat)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: bad header: need path,type,owner[,content]", vshell.ErrImportFormat)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	tree := vfs.New(label)
	rows := 0
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", vshell.ErrImportFormat, row, err)
		}

		path := field(rec, "path")
		kind := vshell.NodeKind(field(rec, "type"))
		owner := field(rec, "owner")
		if owner == "" {
			owner = vshell.DefaultOwner
		}
		if path == "" || !kind.Valid() {
			return nil, fmt.Errorf("%w: row %d: bad values", vshell.ErrImportFormat, row)
		}

		switch kind {
		case vshell.DirKind:
			if err := tree.AddDir(path, owner); err != nil {
				return nil, err
			}
		case vshell.FileKind:
			var content []byte
			if enc := field(rec, "content"); enc != "" {
				content, err = base64.StdEncoding.DecodeString(enc)
				if err != nil {
					return nil, fmt.Errorf("%w: row %d: content not valid base64", vshell.ErrImportFormat, row)
				}
			}
			if err := tree.AddFile(path, owner, content); err != nil {
				return nil, err
			}
		}
		rows++
	}

	logger.Debug().Str("label", label).Int("rows", rows).Msg("Loaded CSV tree description")
	return tree, nil
}
