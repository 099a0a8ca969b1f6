package repository

import (
	"context"

	"alecviz/internal/domain"
)

// DatasetInfo summarizes a stored dataset
type DatasetInfo struct {
	Name       string `json:"name"`
	Alarms     int    `json:"alarms"`
	Inventory  int    `json:"inventory"`
	ResultSets int    `json:"result_sets"`
}

// DatasetStore persists imported datasets by name
type DatasetStore interface {
	// SaveDataset stores ds under name, replacing any previous dataset with that name
	SaveDataset(ctx context.Context, name string, ds *domain.Dataset) error
	// LoadDataset returns domain.ErrNotFound when no dataset has that name
	LoadDataset(ctx context.Context, name string) (*domain.Dataset, error)
	ListDatasets(ctx context.Context) ([]DatasetInfo, error)
	DeleteDataset(ctx context.Context, name string) error

	// Close releases resources
	Close() error
}
