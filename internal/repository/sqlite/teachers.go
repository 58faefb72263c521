package sqlite

import (
	"context"
	"fmt"

	"semaphore/masterdata/internal/model"
)

const teacherColumns = `id, nama, nip, nomor_hp, alamat, created_date, modified_date`

func scanTeacher(row scanner) (model.Teacher, error) {
	var (
		teacher           model.Teacher
		created, modified string
	)
	if err := row.Scan(&teacher.ID, &teacher.Nama, &teacher.NIP, &teacher.NomorHP, &teacher.Alamat, &created, &modified); err != nil {
		return model.Teacher{}, err
	}
	var err error
	if teacher.CreatedDate, err = parseTime(created); err != nil {
		return model.Teacher{}, err
	}
	if teacher.ModifiedDate, err = parseTime(modified); err != nil {
		return model.Teacher{}, err
	}
	return teacher, nil
}

func (s *Store) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+teacherColumns+` FROM m_guru ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer rows.Close()

	teachers := make([]model.Teacher, 0)
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("list teachers: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

func (s *Store) GetTeacher(ctx context.Context, id int32) (model.Teacher, error) {
	teacher, err := scanTeacher(s.db.QueryRowContext(ctx, `SELECT `+teacherColumns+` FROM m_guru WHERE id = ?`, id))
	if err != nil {
		return model.Teacher{}, fmt.Errorf("get teacher %d: %w", id, translate(err))
	}
	return teacher, nil
}

func (s *Store) CreateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO m_guru (nama, nip, nomor_hp, alamat, created_date, modified_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`, teacher.Nama, teacher.NIP, teacher.NomorHP, teacher.Alamat, formatTime(teacher.CreatedDate), formatTime(teacher.ModifiedDate))
	if err != nil {
		return model.Teacher{}, fmt.Errorf("create teacher: %w", translate(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.Teacher{}, fmt.Errorf("create teacher: %w", err)
	}
	teacher.ID = int32(id)
	return teacher, nil
}

func (s *Store) UpdateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error) {
	err := affected(s.db.ExecContext(ctx, `
		UPDATE m_guru
		SET nama = ?, nip = ?, nomor_hp = ?, alamat = ?, modified_date = ?
		WHERE id = ?
	`, teacher.Nama, teacher.NIP, teacher.NomorHP, teacher.Alamat, formatTime(teacher.ModifiedDate), teacher.ID))
	if err != nil {
		return model.Teacher{}, fmt.Errorf("update teacher %d: %w", teacher.ID, err)
	}
	return teacher, nil
}

func (s *Store) DeleteTeacher(ctx context.Context, id int32) error {
	if err := affected(s.db.ExecContext(ctx, `DELETE FROM m_guru WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("delete teacher %d: %w", id, err)
	}
	return nil
}
