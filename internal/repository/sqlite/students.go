package sqlite

import (
	"context"
	"fmt"

	"semaphore/masterdata/internal/model"
)

func scanStudent(row scanner) (model.Student, error) {
	var (
		student           model.Student
		created, modified string
	)
	if err := row.Scan(&student.ID, &student.Name, &created, &modified); err != nil {
		return model.Student{}, err
	}
	var err error
	if student.CreatedDate, err = parseTime(created); err != nil {
		return model.Student{}, err
	}
	if student.ModifiedDate, err = parseTime(modified); err != nil {
		return model.Student{}, err
	}
	return student, nil
}

func (s *Store) ListStudents(ctx context.Context) ([]model.Student, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_date, modified_date FROM m_student ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
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
	student, err := scanStudent(s.db.QueryRowContext(ctx, `SELECT id, name, created_date, modified_date FROM m_student WHERE id = ?`, id))
	if err != nil {
		return model.Student{}, fmt.Errorf("get student %d: %w", id, translate(err))
	}
	return student, nil
}

func (s *Store) CreateStudent(ctx context.Context, student model.Student) (model.Student, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO m_student (name, created_date, modified_date)
		VALUES (?, ?, ?)
	`, student.Name, formatTime(student.CreatedDate), formatTime(student.ModifiedDate))
	if err != nil {
		return model.Student{}, fmt.Errorf("create student: %w", translate(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.Student{}, fmt.Errorf("create student: %w", err)
	}
	student.ID = int32(id)
	return student, nil
}

func (s *Store) UpdateStudent(ctx context.Context, student model.Student) (model.Student, error) {
	err := affected(s.db.ExecContext(ctx, `
		UPDATE m_student
		SET name = ?, modified_date = ?
		WHERE id = ?
	`, student.Name, formatTime(student.ModifiedDate), student.ID))
	if err != nil {
		return model.Student{}, fmt.Errorf("update student %d: %w", student.ID, err)
	}
	return student, nil
}

func (s *Store) DeleteStudent(ctx context.Context, id int32) error {
	if err := affected(s.db.ExecContext(ctx, `DELETE FROM m_student WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	return nil
}
