package http

import (
	"errors"
	"fmt"
	"net/http"

	"semaphore/masterdata/internal/model"
	"semaphore/masterdata/internal/repository"
)

const (
	msgStudentNotFound = "Data student dengan Id %d tidak ditemukan"
	msgStudentCreated  = "Berhasil menambahkan data student baru (id: %d)"
	msgStudentUpdated  = "Berhasil mengubah data student dengan Id %d"
	msgStudentDeleted  = "Berhasil menghapus data student dengan Id %d"
	msgStudentConflict = "Nama student sudah digunakan"
	msgStudentNoID     = "ID student wajib diisi!"
)

type studentResponse struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type studentRequest struct {
	ID   *int32  `json:"id"`
	Name *string `json:"name"`
}

func mapStudent(student model.Student) studentResponse {
	return studentResponse{ID: student.ID, Name: student.Name}
}

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := s.repo.ListStudents(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	resp := make([]studentResponse, 0, len(students))
	for _, student := range students {
		resp = append(resp, mapStudent(student))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	student, err := s.repo.GetStudent(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgStudentNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapStudent(student))
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var req studentRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, msgInvalidFormat)
		return
	}
	if req.ID != nil {
		badRequest(w, msgIDOnCreate)
		return
	}
	name, msg := studentName.check(req.Name)
	if msg != "" {
		badRequest(w, msg)
		return
	}

	now := s.now()
	created, err := s.repo.CreateStudent(r.Context(), model.Student{
		Name:         name,
		CreatedDate:  now,
		ModifiedDate: now,
	})
	if errors.Is(err, repository.ErrConflict) {
		writeError(w, http.StatusConflict, codeConflict, msgStudentConflict)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, fmt.Sprintf(msgStudentCreated, created.ID), created.ID)
}

func (s *Server) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req studentRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, msgInvalidFormat)
		return
	}
	if req.ID == nil {
		badRequest(w, msgStudentNoID)
		return
	}
	id := *req.ID
	if id <= 0 {
		badRequest(w, msgInvalidID)
		return
	}
	name, msg := studentName.check(req.Name)
	if msg != "" {
		badRequest(w, msg)
		return
	}

	student, err := s.primary().GetStudent(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgStudentNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	student.Name = name
	student.ModifiedDate = s.modifiedAt(student.ModifiedDate)

	_, err = s.repo.UpdateStudent(r.Context(), student)
	switch {
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, msgStudentConflict)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgStudentNotFound, id))
	case err != nil:
		s.serverError(w, r, err)
	default:
		writeMessage(w, http.StatusOK, fmt.Sprintf(msgStudentUpdated, id), id)
	}
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	err := s.repo.DeleteStudent(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgStudentNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf(msgStudentDeleted, id), id)
}
