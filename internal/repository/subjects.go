package repository

import (
	"context"
	"fmt"

	"semaphore/masterdata/internal/model"
)

const subjectColumns = `id, nama, deskripsi, created_date, modified_date`

func (s *Store) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+subjectColumns+` FROM m_mata_pelajaran ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	subjects := make([]model.Subject, 0)
	for rows.Next() {
		var subject model.Subject
		if err := rows.Scan(&subject.ID, &subject.Nama, &subject.Deskripsi, &subject.CreatedDate, &subject.ModifiedDate); err != nil {
			return nil, fmt.Errorf("list subjects: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

func (s *Store) GetSubject(ctx context.Context, id int32) (model.Subject, error) {
	var subject model.Subject
	row := s.pool.QueryRow(ctx, `SELECT `+subjectColumns+` FROM m_mata_pelajaran WHERE id = $1`, id)
	if err := row.Scan(&subject.ID, &subject.Nama, &subject.Deskripsi, &subject.CreatedDate, &subject.ModifiedDate); err != nil {
		return model.Subject{}, fmt.Errorf("get subject %d: %w", id, translate(err))
	}
	return subject, nil
}

func (s *Store) CreateSubject(ctx context.Context, subject model.Subject) (model.Subject, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO m_mata_pelajaran (nama, deskripsi, created_date, modified_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, subject.Nama, subject.Deskripsi, subject.CreatedDate, subject.ModifiedDate)
	if err := row.Scan(&subject.ID); err != nil {
		return model.Subject{}, fmt.Errorf("create subject: %w", translate(err))
	}
	return subject, nil
}

func (s *Store) UpdateSubject(ctx context.Context, subject model.Subject) (model.Subject, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE m_mata_pelajaran
		SET nama = $2, deskripsi = $3, modified_date = $4
		WHERE id = $1
	`, subject.ID, subject.Nama, subject.Deskripsi, subject.ModifiedDate)
	if err := affected(tag, err); err != nil {
		return model.Subject{}, fmt.Errorf("update subject %d: %w", subject.ID, err)
	}
	return subject, nil
}

func (s *Store) DeleteSubject(ctx context.Context, id int32) error {
	if err := affected(s.pool.Exec(ctx, `DELETE FROM m_mata_pelajaran WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete subject %d: %w", id, err)
	}
	return nil
}
