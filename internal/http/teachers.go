package http

import (
	"errors"
	"fmt"
	"net/http"

	"semaphore/masterdata/internal/model"
	"semaphore/masterdata/internal/repository"
)

const (
	msgTeacherNotFound = "Data Guru dengan Id %d tidak ditemukan"
	msgTeacherCreated  = "Berhasil menambahkan data Guru baru (id: %d)"
	msgTeacherUpdated  = "Berhasil mengubah data Guru dengan Id %d"
	msgTeacherDeleted  = "Berhasil menghapus data Guru dengan Id %d"
	msgTeacherConflict = "NIP atau Nomor HP sudah digunakan"
	msgTeacherNoID     = "ID guru wajib diisi!"
)

type teacherResponse struct {
	ID      int32  `json:"id"`
	Nama    string `json:"nama"`
	NIP     string `json:"nip"`
	NomorHP string `json:"nomorHp"`
	Alamat  string `json:"alamat"`
}

type teacherRequest struct {
	ID      *int32  `json:"id"`
	Nama    *string `json:"nama"`
	NIP     *string `json:"nip"`
	NomorHP *string `json:"nomorHp"`
	Alamat  *string `json:"alamat"`
}

func mapTeacher(teacher model.Teacher) teacherResponse {
	return teacherResponse{
		ID:      teacher.ID,
		Nama:    teacher.Nama,
		NIP:     teacher.NIP,
		NomorHP: teacher.NomorHP,
		Alamat:  teacher.Alamat,
	}
}

// validate returns the trimmed field values. On update only nama and nip are
// required; nomorHp and alamat are checked when present.
func (req teacherRequest) validate(update bool) (model.Teacher, string) {
	var (
		teacher model.Teacher
		msg     string
	)
	if teacher.Nama, msg = teacherNama.check(req.Nama); msg != "" {
		return model.Teacher{}, msg
	}
	if teacher.NIP, msg = teacherNIP.check(req.NIP); msg != "" {
		return model.Teacher{}, msg
	}
	if !update || req.NomorHP != nil {
		if teacher.NomorHP, msg = teacherNomorHP.check(req.NomorHP); msg != "" {
			return model.Teacher{}, msg
		}
	}
	if !update || req.Alamat != nil {
		if teacher.Alamat, msg = teacherAlamat.check(req.Alamat); msg != "" {
			return model.Teacher{}, msg
		}
	}
	return teacher, ""
}

func (s *Server) handleListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := s.repo.ListTeachers(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	resp := make([]teacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		resp = append(resp, mapTeacher(teacher))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	teacher, err := s.repo.GetTeacher(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgTeacherNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapTeacher(teacher))
}

func (s *Server) handleCreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req teacherRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, msgInvalidFormat)
		return
	}
	if req.ID != nil {
		badRequest(w, msgIDOnCreate)
		return
	}
	teacher, msg := req.validate(false)
	if msg != "" {
		badRequest(w, msg)
		return
	}

	now := s.now()
	teacher.CreatedDate = now
	teacher.ModifiedDate = now
	created, err := s.repo.CreateTeacher(r.Context(), teacher)
	if errors.Is(err, repository.ErrConflict) {
		writeError(w, http.StatusConflict, codeConflict, msgTeacherConflict)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, fmt.Sprintf(msgTeacherCreated, created.ID), created.ID)
}

func (s *Server) handleUpdateTeacher(w http.ResponseWriter, r *http.Request) {
	var req teacherRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, msgInvalidFormat)
		return
	}
	if req.ID == nil {
		badRequest(w, msgTeacherNoID)
		return
	}
	id := *req.ID
	if id <= 0 {
		badRequest(w, msgInvalidID)
		return
	}
	fields, msg := req.validate(true)
	if msg != "" {
		badRequest(w, msg)
		return
	}

	teacher, err := s.primary().GetTeacher(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgTeacherNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	teacher.Nama = fields.Nama
	teacher.NIP = fields.NIP
	if req.NomorHP != nil {
		teacher.NomorHP = fields.NomorHP
	}
	if req.Alamat != nil {
		teacher.Alamat = fields.Alamat
	}
	teacher.ModifiedDate = s.modifiedAt(teacher.ModifiedDate)

	_, err = s.repo.UpdateTeacher(r.Context(), teacher)
	switch {
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, msgTeacherConflict)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgTeacherNotFound, id))
	case err != nil:
		s.serverError(w, r, err)
	default:
		writeMessage(w, http.StatusOK, fmt.Sprintf(msgTeacherUpdated, id), id)
	}
}

func (s *Server) handleDeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, msgInvalidID)
		return
	}
	err := s.repo.DeleteTeacher(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(msgTeacherNotFound, id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf(msgTeacherDeleted, id), id)
}
