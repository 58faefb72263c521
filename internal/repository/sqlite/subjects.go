package sqlite

import (
	"context"
	"fmt"

	"semaphore/masterdata/internal/model"
)

const subjectColumns = `id, nama, deskripsi, created_date, modified_date`

func scanSubject(row scanner) (model.Subject, error) {
	var (
		subject           model.Subject
		created, modified string
	)
	if err := row.Scan(&subject.ID, &subject.Nama, &subject.Deskripsi, &created, &modified); err != nil {
		return model.Subject{}, err
	}
	var err error
	if subject.CreatedDate, err = parseTime(created); err != nil {
		return model.Subject{}, err
	}
	if subject.ModifiedDate, err = parseTime(modified); err != nil {
		return model.Subject{}, err
	}
	return subject, nil
}

func (s *Store) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+subjectColumns+` FROM m_mata_pelajaran ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	subjects := make([]model.Subject, 0)
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
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
	subject, err := scanSubject(s.db.QueryRowContext(ctx, `SELECT `+subjectColumns+` FROM m_mata_pelajaran WHERE id = ?`, id))
	if err != nil {
		return model.Subject{}, fmt.Errorf("get subject %d: %w", id, translate(err))
	}
	return subject, nil
}

func (s *Store) CreateSubject(ctx context.Context, subject model.Subject) (model.Subject, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO m_mata_pelajaran (nama, deskripsi, created_date, modified_date)
		VALUES (?, ?, ?, ?)
	`, subject.Nama, subject.Deskripsi, formatTime(subject.CreatedDate), formatTime(subject.ModifiedDate))
	if err != nil {
		return model.Subject{}, fmt.Errorf("create subject: %w", translate(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.Subject{}, fmt.Errorf("create subject: %w", err)
	}
	subject.ID = int32(id)
	return subject, nil
}

func (s *Store) UpdateSubject(ctx context.Context, subject model.Subject) (model.Subject, error) {
	err := affected(s.db.ExecContext(ctx, `
		UPDATE m_mata_pelajaran
		SET nama = ?, deskripsi = ?, modified_date = ?
		WHERE id = ?
	`, subject.Nama, subject.Deskripsi, formatTime(subject.ModifiedDate), subject.ID))
	if err != nil {
		return model.Subject{}, fmt.Errorf("update subject %d: %w", subject.ID, err)
	}
	return subject, nil
}

func (s *Store) DeleteSubject(ctx context.Context, id int32) error {
	if err := affected(s.db.ExecContext(ctx, `DELETE FROM m_mata_pelajaran WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("delete subject %d: %w", id, err)
	}
	return nil
}
