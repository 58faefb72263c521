package sqlite

import (
	"context"
	"fmt"

	"semaphore/masterdata/internal/model"
)

const classColumns = `id, nama, deskripsi, kapasitas, created_date, modified_date`

func scanClass(row scanner) (model.Class, error) {
	var (
		class             model.Class
		created, modified string
	)
	if err := row.Scan(&class.ID, &class.Nama, &class.Deskripsi, &class.Kapasitas, &created, &modified); err != nil {
		return model.Class{}, err
	}
	var err error
	if class.CreatedDate, err = parseTime(created); err != nil {
		return model.Class{}, err
	}
	if class.ModifiedDate, err = parseTime(modified); err != nil {
		return model.Class{}, err
	}
	return class, nil
}

func (s *Store) ListClasses(ctx context.Context) ([]model.Class, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+classColumns+` FROM m_kelas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	classes := make([]model.Class, 0)
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
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
	class, err := scanClass(s.db.QueryRowContext(ctx, `SELECT `+classColumns+` FROM m_kelas WHERE id = ?`, id))
	if err != nil {
		return model.Class{}, fmt.Errorf("get class %d: %w", id, translate(err))
	}
	return class, nil
}

func (s *Store) CreateClass(ctx context.Context, class model.Class) (model.Class, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO m_kelas (nama, deskripsi, kapasitas, created_date, modified_date)
		VALUES (?, ?, ?, ?, ?)
	`, class.Nama, class.Deskripsi, class.Kapasitas, formatTime(class.CreatedDate), formatTime(class.ModifiedDate))
	if err != nil {
		return model.Class{}, fmt.Errorf("create class: %w", translate(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.Class{}, fmt.Errorf("create class: %w", err)
	}
	class.ID = int32(id)
	return class, nil
}

func (s *Store) UpdateClass(ctx context.Context, class model.Class) (model.Class, error) {
	err := affected(s.db.ExecContext(ctx, `
		UPDATE m_kelas
		SET nama = ?, deskripsi = ?, kapasitas = ?, modified_date = ?
		WHERE id = ?
	`, class.Nama, class.Deskripsi, class.Kapasitas, formatTime(class.ModifiedDate), class.ID))
	if err != nil {
		return model.Class{}, fmt.Errorf("update class %d: %w", class.ID, err)
	}
	return class, nil
}

func (s *Store) DeleteClass(ctx context.Context, id int32) error {
	if err := affected(s.db.ExecContext(ctx, `DELETE FROM m_kelas WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("delete class %d: %w", id, err)
	}
	return nil
}
