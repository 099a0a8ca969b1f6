package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"alecviz/internal/domain"
)

// YAMLCodec handles YAML dataset import and graph export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

func decodeYAML(r io.Reader, v any) error {
	// an empty file decodes to io.EOF
	if err := yaml.NewDecoder(r).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// ParseAlarms reads an alarms document
func (c *YAMLCodec) ParseAlarms(r io.Reader) ([]domain.Alarm, error) {
	var doc alarmsDocument
	if err := decodeYAML(r, &doc); err != nil {
		return nil, err
	}
	return doc.toAlarms()
}

// ParseInventory reads an inventory document
func (c *YAMLCodec) ParseInventory(r io.Reader) ([]domain.InventoryObject, error) {
	var doc inventoryDocument
	if err := decodeYAML(r, &doc); err != nil {
		return nil, err
	}
	return doc.toInventory()
}

// ParseSituations reads a situations document
func (c *YAMLCodec) ParseSituations(r io.Reader) ([]domain.Situation, error) {
	var doc situationsDocument
	if err := decodeYAML(r, &doc); err != nil {
		return nil, err
	}
	return doc.toSituations()
}

// Export writes the graph as YAML
func (c *YAMLCodec) Export(graph *domain.Graph, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(graph); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
