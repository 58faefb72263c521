package repository

import (
	"context"
	"fmt"

	"semaphore/masterdata/internal/model"
)

func (s *Store) ListStudents(ctx context.Context) ([]model.Student, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, created_date, modified_date FROM m_student ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		var student model.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.CreatedDate, &student.ModifiedDate); err != nil {
			return nil, fmt.Errorf("list students: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *Store) GetStudent(ctx context.Context, id int32) (model.Student, error) {
	var student model.Student
	row := s.pool.QueryRow(ctx, `SELECT id, name, created_date, modified_date FROM m_student WHERE id = $1`, id)
	if err := row.Scan(&student.ID, &student.Name, &student.CreatedDate, &student.ModifiedDate); err != nil {
		return model.Student{}, fmt.Errorf("get student %d: %w", id, translate(err))
	}
	return student, nil
}

func (s *Store) CreateStudent(ctx context.Context, student model.Student) (model.Student, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO m_student (name, created_date, modified_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`, student.Name, student.CreatedDate, student.ModifiedDate)
	if err := row.Scan(&student.ID); err != nil {
		return model.Student{}, fmt.Errorf("create student: %w", translate(err))
	}
	return student, nil
}

func (s *Store) UpdateStudent(ctx context.Context, student model.Student) (model.Student, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE m_student
		SET name = $2, modified_date = $3
		WHERE id = $1
	`, student.ID, student.Name, student.ModifiedDate)
	if err := affected(tag, err); err != nil {
		return model.Student{}, fmt.Errorf("update student %d: %w", student.ID, err)
	}
	return student, nil
}

func (s *Store) DeleteStudent(ctx context.Context, id int32) error {
	if err := affected(s.pool.Exec(ctx, `DELETE FROM m_student WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	return nil
}
