package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"alecviz/internal/domain"
	"alecviz/internal/repository"
)

// Repository implements repository.DatasetStore using SQLite
type Repository struct {
	db *sql.DB
}

var _ repository.DatasetStore = (*Repository)(nil)

// New opens (or creates) the database at dbPath and migrates the schema
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps pragmas and :memory: databases consistent
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	PRAGMA foreign_keys = ON;
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS datasets (
		name TEXT PRIMARY KEY,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS alarms (
		dataset TEXT NOT NULL,
		seq INTEGER NOT NULL,
		id TEXT NOT NULL,
		time_ms INTEGER NOT NULL,
		severity TEXT NOT NULL,
		clear INTEGER NOT NULL DEFAULT 0,
		io_type TEXT NOT NULL,
		io_id TEXT NOT NULL,
		summary TEXT NOT NULL DEFAULT '',
		description TEXT,
		PRIMARY KEY (dataset, seq),
		FOREIGN KEY (dataset) REFERENCES datasets(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS inventory (
		dataset TEXT NOT NULL,
		seq INTEGER NOT NULL,
		type TEXT NOT NULL,
		id TEXT NOT NULL,
		friendly_name TEXT,
		parent_type TEXT,
		parent_id TEXT,
		peers JSON,
		relatives JSON,
		PRIMARY KEY (dataset, seq),
		FOREIGN KEY (dataset) REFERENCES datasets(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS situation_sets (
		dataset TEXT NOT NULL,
		seq INTEGER NOT NULL,
		source TEXT NOT NULL,
		is_primary INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (dataset, seq),
		UNIQUE (dataset, source),
		FOREIGN KEY (dataset) REFERENCES datasets(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS situations (
		dataset TEXT NOT NULL,
		source TEXT NOT NULL,
		seq INTEGER NOT NULL,
		id TEXT NOT NULL,
		creation_ms INTEGER NOT NULL,
		diagnostic_text TEXT,
		alarm_ids JSON,
		PRIMARY KEY (dataset, source, seq),
		FOREIGN KEY (dataset) REFERENCES datasets(name) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_alarms_id ON alarms(dataset, id);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SaveDataset stores ds under name, replacing an existing dataset
func (r *Repository) SaveDataset(ctx context.Context, name string, ds *domain.Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteDataset(ctx, tx, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO datasets (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("failed to insert dataset %s: %w", name, err)
	}

	alarmStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO alarms (dataset, seq, id, time_ms, severity, clear, io_type, io_id, summary, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare alarm statement: %w", err)
	}
	defer alarmStmt.Close()

	for i, a := range ds.Alarms() {
		if _, err := alarmStmt.ExecContext(ctx, name, i, a.ID, a.Time, a.Severity.String(), boolToInt(a.Clear),
			a.InventoryObjectType, a.InventoryObjectID, a.Summary, stringToNull(a.Description)); err != nil {
			return fmt.Errorf("failed to insert alarm %s: %w", a.ID, err)
		}
	}

	ioStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO inventory (dataset, seq, type, id, friendly_name, parent_type, parent_id, peers, relatives)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare inventory statement: %w", err)
	}
	defer ioStmt.Close()

	for i, io := range ds.Inventory() {
		peers, err := marshalSliceToNull(io.Peers)
		if err != nil {
			return fmt.Errorf("failed to marshal peers of %s: %w", io.ID, err)
		}
		relatives, err := marshalSliceToNull(io.Relatives)
		if err != nil {
			return fmt.Errorf("failed to marshal relatives of %s: %w", io.ID, err)
		}
		if _, err := ioStmt.ExecContext(ctx, name, i, io.Type, io.ID, stringToNull(io.FriendlyName),
			stringToNull(io.ParentType), stringToNull(io.ParentID), peers, relatives); err != nil {
			return fmt.Errorf("failed to insert inventory object %s: %w", io.ID, err)
		}
	}

	setStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO situation_sets (dataset, seq, source, is_primary) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare situation set statement: %w", err)
	}
	defer setStmt.Close()

	sitStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO situations (dataset, source, seq, id, creation_ms, diagnostic_text, alarm_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare situation statement: %w", err)
	}
	defer sitStmt.Close()

	for i, rs := range ds.SituationResultSets() {
		if _, err := setStmt.ExecContext(ctx, name, i, rs.Source, boolToInt(rs.Primary)); err != nil {
			return fmt.Errorf("failed to insert situation set %s: %w", rs.Source, err)
		}
		for j, s := range rs.Situations {
			alarmIDs, err := marshalSliceToNull(s.AlarmIDs)
			if err != nil {
				return fmt.Errorf("failed to marshal alarms of situation %s: %w", s.ID, err)
			}
			if _, err := sitStmt.ExecContext(ctx, name, rs.Source, j, s.ID, s.CreationTime,
				stringToNull(s.DiagnosticText), alarmIDs); err != nil {
				return fmt.Errorf("failed to insert situation %s: %w", s.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadDataset reads a dataset back in its saved order
func (r *Repository) LoadDataset(ctx context.Context, name string) (*domain.Dataset, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM datasets WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("dataset %s: %w", name, domain.ErrNotFound)
	}

	alarms, err := r.loadAlarms(ctx, name)
	if err != nil {
		return nil, err
	}
	inventory, err := r.loadInventory(ctx, name)
	if err != nil {
		return nil, err
	}
	sets, err := r.loadSituationSets(ctx, name)
	if err != nil {
		return nil, err
	}

	return domain.NewDataset(alarms, inventory, sets)
}

func (r *Repository) loadAlarms(ctx context.Context, name string) ([]domain.Alarm, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, time_ms, severity, clear, io_type, io_id, summary, description
		FROM alarms WHERE dataset = ? ORDER BY seq
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query alarms: %w", err)
	}
	defer rows.Close()

	var alarms []domain.Alarm
	for rows.Next() {
		var (
			a           domain.Alarm
			severity    string
			clear       int
			description sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Time, &severity, &clear, &a.InventoryObjectType,
			&a.InventoryObjectID, &a.Summary, &description); err != nil {
			return nil, fmt.Errorf("failed to scan alarm: %w", err)
		}
		if a.Severity, err = domain.ParseSeverity(severity); err != nil {
			return nil, fmt.Errorf("alarm %s: %w", a.ID, err)
		}
		a.Clear = clear != 0
		a.Description = nullToString(description)
		alarms = append(alarms, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alarms: %w", err)
	}
	return alarms, nil
}

func (r *Repository) loadInventory(ctx context.Context, name string) ([]domain.InventoryObject, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT type, id, friendly_name, parent_type, parent_id, peers, relatives
		FROM inventory WHERE dataset = ? ORDER BY seq
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var objects []domain.InventoryObject
	for rows.Next() {
		var (
			io                             domain.InventoryObject
			friendly, parentType, parentID sql.NullString
			peers, relatives               sql.NullString
		)
		if err := rows.Scan(&io.Type, &io.ID, &friendly, &parentType, &parentID, &peers, &relatives); err != nil {
			return nil, fmt.Errorf("failed to scan inventory object: %w", err)
		}
		io.FriendlyName = nullToString(friendly)
		io.ParentType = nullToString(parentType)
		io.ParentID = nullToString(parentID)
		if err := unmarshalJSONField(peers, &io.Peers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal peers of %s: %w", io.ID, err)
		}
		if err := unmarshalJSONField(relatives, &io.Relatives); err != nil {
			return nil, fmt.Errorf("failed to unmarshal relatives of %s: %w", io.ID, err)
		}
		objects = append(objects, io)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory: %w", err)
	}
	return objects, nil
}

func (r *Repository) loadSituationSets(ctx context.Context, name string) ([]domain.SituationResultSet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT source, is_primary FROM situation_sets WHERE dataset = ? ORDER BY seq
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query situation sets: %w", err)
	}

	var sets []domain.SituationResultSet
	for rows.Next() {
		var (
			rs      domain.SituationResultSet
			primary int
		)
		if err := rows.Scan(&rs.Source, &primary); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan situation set: %w", err)
		}
		rs.Primary = primary != 0
		sets = append(sets, rs)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating situation sets: %w", err)
	}

	// the single connection is free again once the outer rows are closed
	for i := range sets {
		situations, err := r.loadSituations(ctx, name, sets[i].Source)
		if err != nil {
			return nil, err
		}
		sets[i].Situations = situations
	}
	return sets, nil
}

func (r *Repository) loadSituations(ctx context.Context, name, source string) ([]domain.Situation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, creation_ms, diagnostic_text, alarm_ids
		FROM situations WHERE dataset = ? AND source = ? ORDER BY seq
	`, name, source)
	if err != nil {
		return nil, fmt.Errorf("failed to query situations: %w", err)
	}
	defer rows.Close()

	var situations []domain.Situation
	for rows.Next() {
		var (
			s         domain.Situation
			diag, ids sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.CreationTime, &diag, &ids); err != nil {
			return nil, fmt.Errorf("failed to scan situation: %w", err)
		}
		s.DiagnosticText = nullToString(diag)
		if err := unmarshalJSONField(ids, &s.AlarmIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal alarms of situation %s: %w", s.ID, err)
		}
		situations = append(situations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating situations: %w", err)
	}
	return situations, nil
}

// ListDatasets returns every stored dataset ordered by name
func (r *Repository) ListDatasets(ctx context.Context) ([]repository.DatasetInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.name,
			(SELECT COUNT(*) FROM alarms a WHERE a.dataset = d.name),
			(SELECT COUNT(*) FROM inventory i WHERE i.dataset = d.name),
			(SELECT COUNT(*) FROM situation_sets s WHERE s.dataset = d.name)
		FROM datasets d ORDER BY d.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer rows.Close()

	var infos []repository.DatasetInfo
	for rows.Next() {
		var info repository.DatasetInfo
		if err := rows.Scan(&info.Name, &info.Alarms, &info.Inventory, &info.ResultSets); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating datasets: %w", err)
	}
	return infos, nil
}

// DeleteDataset removes a dataset and all of its records
func (r *Repository) DeleteDataset(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteDataset(ctx, tx, name); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteDataset(ctx context.Context, tx *sql.Tx, name string) error {
	// children first, so the delete does not depend on foreign_keys being enabled
	for _, table := range []string{"situations", "situation_sets", "inventory", "alarms"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE dataset = ?`, name); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete dataset %s: %w", name, err)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
