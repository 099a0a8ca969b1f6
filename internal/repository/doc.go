// Package repository defines the storage interface for imported datasets.
//
// Datasets are normally read from a directory of record files. Importing
// them into a DatasetStore lets a server start from a single database file
// and keep several named datasets side by side. The sqlite subpackage is
// the implementation.
//
// A stored dataset round-trips exactly: record order, severities, clear
// flags, inventory references and every situation result set (primary
// flag and source name included) come back as they were saved.
package repository
