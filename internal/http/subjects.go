package http

import (
	"errors"
	"fmt"
	"net/http"

	"semaphore/masterdata/internal/model"
	"semaphore/masterdata/internal/repository"
)

const (
	msgSubjectNotFound = "Mata Pelajaran dengan ID %d tidak ada"
	msgSubjectCreated  = "Berhasil menambahkan Mata Pelajaran baru (id: %d)"
	msgSubjectUpdated  = "Mata Pelajaran dengan ID %d berhasil diupdate"
	msgSubjectDeleted  = "Mata Pelajaran dengan ID %d berhasil dihapus"
	msgSubjectConflict = "Mata Pelajaran sudah ada / duplikat"
)

type subjectResponse struct {
	ID        int32  `json:"id"`
	Nama      string `json:"nama"`
	Deskripsi string `json:"deskripsi"`
}

type subjectRequest struct {
	ID        *int32  `json:"id"`
	Nama      *string `json:"nama"`
	Deskripsi *string `json:"deskripsi"`
}

func mapSubject(subject model.Subject) subjectResponse {
	return subjectResponse{
		ID:        subject.ID,
		Nama:      subject.Nama,
		Deskripsi: subject.Deskripsi,
	}
}

// Both fields are required on create and update.
func (req subjectRequest) validate() (model.Subject, string) {
	var (
		subject model.Subject
		msg     string
	)
	if subject.Nama, msg = subjectNama.check(req.Nama); msg != "" {
		return model.Subject{}, msg
	}
	if subject.Deskripsi, msg = subjectDeskripsi.check(req.Deskripsi); msg != "" {
		return model.Subject{}, msg
	}
	return subject, ""
}

func (s *Server) handleListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.repo.ListSubjects(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	resp := make([]subjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		resp = append(resp, mapSubject(subject))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	subject, err := s.repo.GetSubject(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgSubjectNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSubject(subject))
}

func (s *Server) handleCreateSubject(w http.ResponseWriter, r *http.Request) {
	var req subjectRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, msgInvalidFormat)
		return
	}
	if req.ID != nil {
		badRequest(w, msgIDOnCreate)
		return
	}
	subject, msg := req.validate()
	if msg != "" {
		badRequest(w, msg)
		return
	}

	now := s.now()
	subject.CreatedDate = now
	subject.ModifiedDate = now
	created, err := s.repo.CreateSubject(r.Context(), subject)
	if errors.Is(err, repository.ErrConflict) {
		writeError(w, http.StatusConflict, codeConflict, msgSubjectConflict)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, fmt.Sprintf(msgSubjectCreated, created.ID), created.ID)
}

func (s *Server) handleUpdateSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	var req subjectRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, msgInvalidFormat)
		return
	}
	if req.ID != nil && *req.ID != id {
		badRequest(w, msgIDMismatch)
		return
	}
	fields, msg := req.validate()
	if msg != "" {
		badRequest(w, msg)
		return
	}

	subject, err := s.primary().GetSubject(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgSubjectNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	subject.Nama = fields.Nama
	subject.Deskripsi = fields.Deskripsi
	subject.ModifiedDate = s.modifiedAt(subject.ModifiedDate)

	_, err = s.repo.UpdateSubject(r.Context(), subject)
	switch {
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, msgSubjectConflict)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgSubjectNotFound, id))
	case err != nil:
		s.serverError(w, r, err)
	default:
		writeMessage(w, http.StatusOK, fmt.Sprintf(msgSubjectUpdated, id), id)
	}
}

func (s *Server) handleDeleteSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	err := s.repo.DeleteSubject(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgSubjectNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf(msgSubjectDeleted, id), id)
}
