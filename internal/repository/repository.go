// Package repository holds the persistence port for the master-data
// entities and its PostgreSQL implementation.
package repository

import (
	"context"
	"errors"

	"semaphore/masterdata/internal/model"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write breaks a unique constraint.
	ErrConflict = errors.New("unique constraint violated")
)

// Repository is the key-based store the HTTP handlers depend on. Each
// entity gets find-all, find-by-id, create, update and delete. Create
// returns the entity with its generated id; Update and Delete return
// ErrNotFound when the row is gone.
type Repository interface {
	Ping(ctx context.Context) error

	ListTeachers(ctx context.Context) ([]model.Teacher, error)
	GetTeacher(ctx context.Context, id int32) (model.Teacher, error)
	CreateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error)
	UpdateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error)
	DeleteTeacher(ctx context.Context, id int32) error

	ListClasses(ctx context.Context) ([]model.Class, error)
	GetClass(ctx context.Context, id int32) (model.Class, error)
	CreateClass(ctx context.Context, class model.Class) (model.Class, error)
	UpdateClass(ctx context.Context, class model.Class) (model.Class, error)
	DeleteClass(ctx context.Context, id int32) error

	ListSubjects(ctx context.Context) ([]model.Subject, error)
	GetSubject(ctx context.Context, id int32) (model.Subject, error)
	CreateSubject(ctx context.Context, subject model.Subject) (model.Subject, error)
	UpdateSubject(ctx context.Context, subject model.Subject) (model.Subject, error)
	DeleteSubject(ctx context.Context, id int32) error

	ListStudents(ctx context.Context) ([]model.Student, error)
	GetStudent(ctx context.Context, id int32) (model.Student, error)
	CreateStudent(ctx context.Context, student model.Student) (model.Student, error)
	UpdateStudent(ctx context.Context, student model.Student) (model.Student, error)
	DeleteStudent(ctx context.Context, id int32) error
}
