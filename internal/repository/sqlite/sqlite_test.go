package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alecviz/internal/domain"
	"alecviz/internal/loader"
)

// newTestRepo creates an in-memory SQLite repository for testing
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err, "failed to create test repository")
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func sampleDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := loader.Sample()
	require.NoError(t, err)
	return ds
}

func TestSaveAndLoadDataset(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ds := sampleDataset(t)

	require.NoError(t, repo.SaveDataset(ctx, "sample", ds))

	loaded, err := repo.LoadDataset(ctx, "sample")
	require.NoError(t, err)

	assert.Equal(t, ds.Alarms(), loaded.Alarms())
	assert.Equal(t, ds.Inventory(), loaded.Inventory())
	assert.Equal(t, ds.SituationResultSets(), loaded.SituationResultSets())
	assert.Equal(t, ds.PrimaryResultSet().Source, loaded.PrimaryResultSet().Source)
}

func TestSaveDatasetReplaces(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveDataset(ctx, "d", sampleDataset(t)))

	small, err := domain.NewSingleSetDataset(
		[]domain.Alarm{{ID: "1", Time: 5, Severity: domain.SeverityCritical, Clear: true,
			InventoryObjectType: "DEVICE", InventoryObjectID: "d1", Summary: "down"}},
		[]domain.InventoryObject{{Type: "DEVICE", ID: "d1"}},
		[]domain.Situation{domain.NewSituation("s", 6, "diag", []string{"1"})},
	)
	require.NoError(t, err)
	require.NoError(t, repo.SaveDataset(ctx, "d", small))

	loaded, err := repo.LoadDataset(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, small.Alarms(), loaded.Alarms())
	assert.Equal(t, small.Inventory(), loaded.Inventory())
	assert.Equal(t, small.SituationResultSets(), loaded.SituationResultSets())
}

func TestLoadDatasetNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.LoadDataset(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAndDeleteDatasets(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ds := sampleDataset(t)

	require.NoError(t, repo.SaveDataset(ctx, "b", ds))
	require.NoError(t, repo.SaveDataset(ctx, "a", ds))

	infos, err := repo.ListDatasets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].Name)
	assert.Equal(t, len(ds.Alarms()), infos[0].Alarms)
	assert.Equal(t, len(ds.Inventory()), infos[0].Inventory)
	assert.Equal(t, 2, infos[0].ResultSets)

	require.NoError(t, repo.DeleteDataset(ctx, "a"))
	_, err = repo.LoadDataset(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	infos, err = repo.ListDatasets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "b", infos[0].Name)

	_, err = repo.LoadDataset(ctx, "b")
	assert.NoError(t, err, "other datasets untouched")

	assert.NoError(t, repo.DeleteDataset(ctx, "never-existed"))
}

func TestFileDatabasePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alec.db")
	ctx := context.Background()

	repo, err := New(path)
	require.NoError(t, err)
	require.NoError(t, repo.SaveDataset(ctx, "sample", sampleDataset(t)))
	require.NoError(t, repo.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadDataset(ctx, "sample")
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.Alarms())
}
