package graphio

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for the loading surface.
var (
	// ErrNoGraphFiles indicates a directory load found no *.yaml, *.yml, or
	// *.json entries.
	ErrNoGraphFiles = stderrors.New("graphio: no graph files found")

	// ErrNoDistanceEdges indicates the loaded document(s) carry no
	// distance_edges mapping, so there is nothing to run DM-MSTP on.
	ErrNoDistanceEdges = stderrors.New("graphio: document has no distance_edges")
)

// graphExtensions lists the file suffixes a directory load picks up.
var graphExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Load reads a graph Document from path, which may be a single YAML/JSON
// file or a directory of them. Directory entries are merged in lexicographic
// file-name order; later files override earlier weights for the same pair.
//
// Errors: ErrNoGraphFiles for an empty directory, ErrNoDistanceEdges when
// nothing loadable carries distance edges, and wrapped I/O / parse errors
// otherwise.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: stat %s", path)
	}

	if !info.IsDir() {
		doc, parseErr := parseFile(path)
		if parseErr != nil {
			return nil, parseErr
		}
		if len(doc.DistanceEdges) == 0 {
			return nil, errors.Wrapf(ErrNoDistanceEdges, "graphio: %s", path)
		}

		return doc, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: read dir %s", path)
	}

	// Stable merge order: lexicographic file names.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !graphExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, errors.Wrapf(ErrNoGraphFiles, "graphio: %s", path)
	}

	out := &Document{}
	for _, name := range names {
		doc, parseErr := parseFile(filepath.Join(path, name))
		if parseErr != nil {
			return nil, parseErr
		}
		out.DistanceEdges = merge(out.DistanceEdges, doc.DistanceEdges)
		out.TravelTimeEdges = merge(out.TravelTimeEdges, doc.TravelTimeEdges)
	}
	if len(out.DistanceEdges) == 0 {
		return nil, errors.Wrapf(ErrNoDistanceEdges, "graphio: %s", path)
	}

	return out, nil
}

// parseFile decodes one document; the extension picks the codec.
func parseFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: read %s", path)
	}

	doc := &Document{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err = json.Unmarshal(raw, doc); err != nil {
			return nil, errors.Wrapf(err, "graphio: parse json %s", path)
		}

		return doc, nil
	}
	if err = yaml.Unmarshal(raw, doc); err != nil {
		return nil, errors.Wrapf(err, "graphio: parse yaml %s", path)
	}

	return doc, nil
}
