package repository

import (
	"context"
	"fmt"

	"semaphore/masterdata/internal/model"
)

const teacherColumns = `id, nama, nip, nomor_hp, alamat, created_date, modified_date`

func (s *Store) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+teacherColumns+` FROM m_guru ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer rows.Close()

	teachers := make([]model.Teacher, 0)
	for rows.Next() {
		var teacher model.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.Nama,
			&teacher.NIP,
			&teacher.NomorHP,
			&teacher.Alamat,
			&teacher.CreatedDate,
			&teacher.ModifiedDate,
		); err != nil {
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
	var teacher model.Teacher
	row := s.pool.QueryRow(ctx, `SELECT `+teacherColumns+` FROM m_guru WHERE id = $1`, id)
	err := row.Scan(
		&teacher.ID,
		&teacher.Nama,
		&teacher.NIP,
		&teacher.NomorHP,
		&teacher.Alamat,
		&teacher.CreatedDate,
		&teacher.ModifiedDate,
	)
	if err != nil {
		return model.Teacher{}, fmt.Errorf("get teacher %d: %w", id, translate(err))
	}
	return teacher, nil
}

func (s *Store) CreateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO m_guru (nama, nip, nomor_hp, alamat, created_date, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, teacher.Nama, teacher.NIP, teacher.NomorHP, teacher.Alamat, teacher.CreatedDate, teacher.ModifiedDate)
	if err := row.Scan(&teacher.ID); err != nil {
		return model.Teacher{}, fmt.Errorf("create teacher: %w", translate(err))
	}
	return teacher, nil
}

func (s *Store) UpdateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE m_guru
		SET nama = $2, nip = $3, nomor_hp = $4, alamat = $5, modified_date = $6
		WHERE id = $1
	`, teacher.ID, teacher.Nama, teacher.NIP, teacher.NomorHP, teacher.Alamat, teacher.ModifiedDate)
	if err := affected(tag, err); err != nil {
		return model.Teacher{}, fmt.Errorf("update teacher %d: %w", teacher.ID, err)
	}
	return teacher, nil
}

func (s *Store) DeleteTeacher(ctx context.Context, id int32) error {
	if err := affected(s.pool.Exec(ctx, `DELETE FROM m_guru WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete teacher %d: %w", id, err)
	}
	return nil
}
