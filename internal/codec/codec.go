package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"alecviz/internal/domain"
)

// Importer parses dataset files of one format
type Importer interface {
	ParseAlarms(r io.Reader) ([]domain.Alarm, error)
	ParseInventory(r io.Reader) ([]domain.InventoryObject, error)
	ParseSituations(r io.Reader) ([]domain.Situation, error)
	Format() string
}

// Exporter writes generated graphs in one format
type Exporter interface {
	Export(graph *domain.Graph, w io.Writer) error
	Format() string
}

// Extensions lists the file extensions an importer exists for
var Extensions = []string{".yaml", ".yml", ".json"}

// ImporterFor selects an importer from a file name's extension
func ImporterFor(name string) (Importer, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return NewYAMLCodec(), nil
	case ".json":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("no importer for %q", name)
	}
}

// ExporterFor selects an exporter by format name
func ExporterFor(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	case "json", "":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
