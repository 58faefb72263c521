package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"semaphore/masterdata/internal/db"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS m_guru (
		id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		nama VARCHAR(100) NOT NULL,
		nip VARCHAR(20) NOT NULL UNIQUE,
		nomor_hp VARCHAR(15) NOT NULL UNIQUE,
		alamat VARCHAR(255) NOT NULL,
		created_date TIMESTAMPTZ NOT NULL,
		modified_date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_guru_created_date ON m_guru (created_date)`,
	`CREATE INDEX IF NOT EXISTS idx_guru_modified_date ON m_guru (modified_date)`,

	`CREATE TABLE IF NOT EXISTS m_kelas (
		id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		nama VARCHAR(50) NOT NULL,
		deskripsi VARCHAR(100) NOT NULL UNIQUE,
		kapasitas INTEGER NOT NULL CHECK (kapasitas >= 1),
		created_date TIMESTAMPTZ NOT NULL,
		modified_date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_m_kelas_created_date ON m_kelas (created_date)`,
	`CREATE INDEX IF NOT EXISTS idx_m_kelas_modified_date ON m_kelas (modified_date)`,

	`CREATE TABLE IF NOT EXISTS m_mata_pelajaran (
		id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		nama VARCHAR(20) NOT NULL,
		deskripsi VARCHAR(255) NOT NULL,
		created_date TIMESTAMPTZ NOT NULL,
		modified_date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_m_mata_pelajaran_created_date ON m_mata_pelajaran (created_date)`,
	`CREATE INDEX IF NOT EXISTS idx_m_mata_pelajaran_modified_date ON m_mata_pelajaran (modified_date)`,

	`CREATE TABLE IF NOT EXISTS m_student (
		id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		created_date TIMESTAMPTZ NOT NULL,
		modified_date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_student_created_date ON m_student (created_date)`,
	`CREATE INDEX IF NOT EXISTS idx_student_modified_date ON m_student (modified_date)`,
}

// Migrate creates the tables and indexes in a single transaction. It is
// safe to run against an already migrated database.
func (s *Store) Migrate(ctx context.Context) error {
	return db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate statement %d: %w", i, err)
			}
		}
		return nil
	})
}
