package repository

import (
	"context"
	"fmt"

	"semaphore/masterdata/internal/model"
)

const classColumns = `id, nama, deskripsi, kapasitas, created_date, modified_date`

func (s *Store) ListClasses(ctx context.Context) ([]model.Class, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+classColumns+` FROM m_kelas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	classes := make([]model.Class, 0)
	for rows.Next() {
		var class model.Class
		if err := rows.Scan(&class.ID, &class.Nama, &class.Deskripsi, &class.Kapasitas, &class.CreatedDate, &class.ModifiedDate); err != nil {
			return nil, fmt.Errorf("list classes: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

func (s *Store) GetClass(ctx context.Context, id int32) (model.Class, error) {
	var class model.Class
	row := s.pool.QueryRow(ctx, `SELECT `+classColumns+` FROM m_kelas WHERE id = $1`, id)
	if err := row.Scan(&class.ID, &class.Nama, &class.Deskripsi, &class.Kapasitas, &class.CreatedDate, &class.ModifiedDate); err != nil {
		return model.Class{}, fmt.Errorf("get class %d: %w", id, translate(err))
	}
	return class, nil
}

func (s *Store) CreateClass(ctx context.Context, class model.Class) (model.Class, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO m_kelas (nama, deskripsi, kapasitas, created_date, modified_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, class.Nama, class.Deskripsi, class.Kapasitas, class.CreatedDate, class.ModifiedDate)
	if err := row.Scan(&class.ID); err != nil {
		return model.Class{}, fmt.Errorf("create class: %w", translate(err))
	}
	return class, nil
}

func (s *Store) UpdateClass(ctx context.Context, class model.Class) (model.Class, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE m_kelas
		SET nama = $2, deskripsi = $3, kapasitas = $4, modified_date = $5
		WHERE id = $1
	`, class.ID, class.Nama, class.Deskripsi, class.Kapasitas, class.ModifiedDate)
	if err := affected(tag, err); err != nil {
		return model.Class{}, fmt.Errorf("update class %d: %w", class.ID, err)
	}
	return class, nil
}

func (s *Store) DeleteClass(ctx context.Context, id int32) error {
	if err := affected(s.pool.Exec(ctx, `DELETE FROM m_kelas WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete class %d: %w", id, err)
	}
	return nil
}
