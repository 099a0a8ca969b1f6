package main

import (
	"context"
	"fmt"

	"alecviz/internal/domain"
	"alecviz/internal/loader"
	"alecviz/internal/repository/sqlite"
)

// datasetSource names where a dataset is read from. Dir wins over the
// database; with neither set the embedded sample is used.
type datasetSource struct {
	Dir     string
	DBPath  string
	Dataset string
}

func (s datasetSource) String() string {
	switch {
	case s.Dir != "":
		return "directory " + s.Dir
	case s.DBPath != "" && s.Dataset != "":
		return fmt.Sprintf("dataset %s in %s", s.Dataset, s.DBPath)
	default:
		return "embedded " + loader.SampleName + " dataset"
	}
}

func (s datasetSource) load(ctx context.Context) (*domain.Dataset, error) {
	switch {
	case s.Dir != "":
		return loader.LoadDir(s.Dir)
	case s.DBPath != "" && s.Dataset != "":
		repo, err := sqlite.New(s.DBPath)
		if err != nil {
			return nil, err
		}
		defer repo.Close()
		return repo.LoadDataset(ctx, s.Dataset)
	default:
		return loader.Sample()
	}
}
