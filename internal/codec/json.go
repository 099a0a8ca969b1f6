package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"alecviz/internal/domain"
)

// JSONCodec handles JSON dataset import and graph export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

func decodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

// ParseAlarms reads an alarms document
func (c *JSONCodec) ParseAlarms(r io.Reader) ([]domain.Alarm, error) {
	var doc alarmsDocument
	if err := decodeJSON(r, &doc); err != nil {
		return nil, err
	}
	return doc.toAlarms()
}

// ParseInventory reads an inventory document
func (c *JSONCodec) ParseInventory(r io.Reader) ([]domain.InventoryObject, error) {
	var doc inventoryDocument
	if err := decodeJSON(r, &doc); err != nil {
		return nil, err
	}
	return doc.toInventory()
}

// ParseSituations reads a situations document
func (c *JSONCodec) ParseSituations(r io.Reader) ([]domain.Situation, error) {
	var doc situationsDocument
	if err := decodeJSON(r, &doc); err != nil {
		return nil, err
	}
	return doc.toSituations()
}

// Export writes the graph as indented JSON
func (c *JSONCodec) Export(graph *domain.Graph, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(graph); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
