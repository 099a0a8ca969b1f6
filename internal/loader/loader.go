package loader

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"alecviz/internal/codec"
	"alecviz/internal/domain"
)

const (
	alarmsBase       = "alec.alarms"
	inventoryBase    = "alec.inventory"
	situationsBase   = "alec.situations"
	situationsSuffix = ".situations"
)

//go:embed sample/*.yaml
var sampleFiles embed.FS

// SampleName is the dataset name of the embedded sample
const SampleName = "sample"

// LoadDir loads the dataset stored in dir
func LoadDir(dir string) (*domain.Dataset, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset path %s is not a directory", dir)
	}
	ds, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset from %s: %w", dir, err)
	}
	return ds, nil
}

// Sample loads the embedded sample dataset
func Sample() (*domain.Dataset, error) {
	sub, err := fs.Sub(sampleFiles, "sample")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadFS loads a dataset from the root of fsys
func LoadFS(fsys fs.FS) (*domain.Dataset, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list dataset files: %w", err)
	}

	var alarmsFile, inventoryFile, primaryFile string
	var supplementalFiles []string
	var errs error
	claim := func(slot *string, name string) {
		if *slot != "" {
			errs = multierr.Append(errs, fmt.Errorf("both %s and %s found; keep one", *slot, name))
			return
		}
		*slot = name
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base, ok := recordBase(e.Name())
		if !ok {
			continue
		}
		switch base = strings.ToLower(base); {
		case base == alarmsBase:
			claim(&alarmsFile, e.Name())
		case base == inventoryBase:
			claim(&inventoryFile, e.Name())
		case base == situationsBase:
			claim(&primaryFile, e.Name())
		case strings.HasSuffix(base, situationsSuffix):
			supplementalFiles = append(supplementalFiles, e.Name())
		}
	}
	if errs != nil {
		return nil, errs
	}
	if alarmsFile == "" {
		return nil, fmt.Errorf("no %s file found", alarmsBase)
	}
	sort.Strings(supplementalFiles)

	alarms, err := parseFile(fsys, alarmsFile, codec.Importer.ParseAlarms)
	if err != nil {
		return nil, err
	}

	var inventory []domain.InventoryObject
	if inventoryFile != "" {
		if inventory, err = parseFile(fsys, inventoryFile, codec.Importer.ParseInventory); err != nil {
			return nil, err
		}
	}

	var primary []domain.Situation
	if primaryFile != "" {
		if primary, err = parseFile(fsys, primaryFile, codec.Importer.ParseSituations); err != nil {
			return nil, err
		}
	}

	if len(supplementalFiles) == 0 {
		return domain.NewSingleSetDataset(alarms, inventory, primary)
	}

	sets := []domain.SituationResultSet{{Source: domain.PrimarySource, Primary: true, Situations: primary}}
	for _, name := range supplementalFiles {
		situations, err := parseFile(fsys, name, codec.Importer.ParseSituations)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sets = append(sets, domain.SituationResultSet{Source: name, Situations: situations})
	}
	if errs != nil {
		return nil, errs
	}

	return domain.NewDataset(alarms, inventory, sets)
}

// recordBase strips a supported extension from a file name
func recordBase(name string) (string, bool) {
	for _, ext := range codec.Extensions {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			return name[:len(name)-len(ext)], true
		}
	}
	return "", false
}

func parseFile[T any](fsys fs.FS, name string, parse func(codec.Importer, io.Reader) ([]T, error)) ([]T, error) {
	imp, err := codec.ImporterFor(name)
	if err != nil {
		return nil, err
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	records, err := parse(imp, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return records, nil
}
