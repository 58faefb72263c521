package http

import (
	"errors"
	"fmt"
	"net/http"

	"semaphore/masterdata/internal/model"
	"semaphore/masterdata/internal/repository"
)

const (
	msgClassNotFound = "Kelas dengan Id %d tidak ditemukan"
	msgClassCreated  = "Berhasil menambahkan kelas baru (id: %d)"
	msgClassUpdated  = "Kelas dengan Id %d berhasil diupdate"
	msgClassDeleted  = "Berhasil menghapus kelas dengan Id %d"
	msgClassConflict = "Deskripsi kelas sudah digunakan"
)

type classResponse struct {
	ID        int32  `json:"id"`
	Nama      string `json:"nama"`
	Deskripsi string `json:"deskripsi"`
	Kapasitas int32  `json:"kapasitas"`
}

// Create rejects an id; update takes the id from the path and only accepts a
// body id that matches it.
type classRequest struct {
	ID        *int32  `json:"id"`
	Nama      *string `json:"nama"`
	Deskripsi *string `json:"deskripsi"`
	Kapasitas *int32  `json:"kapasitas"`
}

func mapClass(class model.Class) classResponse {
	return classResponse{
		ID:        class.ID,
		Nama:      class.Nama,
		Deskripsi: class.Deskripsi,
		Kapasitas: class.Kapasitas,
	}
}

func (req classRequest) validate(update bool) (model.Class, string) {
	var (
		class model.Class
		msg   string
	)
	if class.Nama, msg = classNama.check(req.Nama); msg != "" {
		return model.Class{}, msg
	}
	if class.Deskripsi, msg = classDeskripsi.check(req.Deskripsi); msg != "" {
		return model.Class{}, msg
	}
	if !update || req.Kapasitas != nil {
		if class.Kapasitas, msg = checkKapasitas(req.Kapasitas); msg != "" {
			return model.Class{}, msg
		}
	}
	return class, ""
}

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := s.repo.ListClasses(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	resp := make([]classResponse, 0, len(classes))
	for _, class := range classes {
		resp = append(resp, mapClass(class))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetClass(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	class, err := s.repo.GetClass(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgClassNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapClass(class))
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	var req classRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, msgInvalidFormat)
		return
	}
	if req.ID != nil {
		badRequest(w, msgIDOnCreate)
		return
	}
	class, msg := req.validate(false)
	if msg != "" {
		badRequest(w, msg)
		return
	}

	now := s.now()
	class.CreatedDate = now
	class.ModifiedDate = now
	created, err := s.repo.CreateClass(r.Context(), class)
	if errors.Is(err, repository.ErrConflict) {
		writeError(w, http.StatusConflict, codeConflict, msgClassConflict)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, fmt.Sprintf(msgClassCreated, created.ID), created.ID)
}

func (s *Server) handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	var req classRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, msgInvalidFormat)
		return
	}
	if req.ID != nil && *req.ID != id {
		badRequest(w, msgIDMismatch)
		return
	}
	fields, msg := req.validate(true)
	if msg != "" {
		badRequest(w, msg)
		return
	}

	class, err := s.primary().GetClass(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgClassNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	class.Nama = fields.Nama
	class.Deskripsi = fields.Deskripsi
	if req.Kapasitas != nil {
		class.Kapasitas = fields.Kapasitas
	}
	class.ModifiedDate = s.modifiedAt(class.ModifiedDate)

	_, err = s.repo.UpdateClass(r.Context(), class)
	switch {
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, msgClassConflict)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgClassNotFound, id))
	case err != nil:
		s.serverError(w, r, err)
	default:
		writeMessage(w, http.StatusOK, fmt.Sprintf(msgClassUpdated, id), id)
	}
}

func (s *Server) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	err := s.repo.DeleteClass(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgClassNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf(msgClassDeleted, id), id)
}
