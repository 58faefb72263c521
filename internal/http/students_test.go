package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semaphore/masterdata/internal/config"
)

func TestStudentLifecycle(t *testing.T) {
	env := newTestEnv(t, config.Config{})

	requireMessage(t, env.do(t, http.MethodPost, "/student/add-student", `{"name":" Andi "}`), http.StatusCreated, "Berhasil menambahkan data student baru (id: 1)")

	rec := env.do(t, http.MethodGet, "/student/get-student?id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Andi"}`, rec.Body.String())

	requireMessage(t, env.do(t, http.MethodPut, "/student/edit-student", `{"id":1,"name":"Andi Wijaya"}`), http.StatusOK, "Berhasil mengubah data student dengan Id 1")
	stored, err := env.store.GetStudent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", stored.Name)

	rec = env.do(t, http.MethodGet, "/student/list-student", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Andi Wijaya"}]`, rec.Body.String())

	requireMessage(t, env.do(t, http.MethodDelete, "/student/hapus-student/1", ""), http.StatusOK, "Berhasil menghapus data student dengan Id 1")
	requireMessage(t, env.do(t, http.MethodGet, "/student/get-student?id=1", ""), http.StatusNotFound, "Data student dengan Id 1 tidak ditemukan")
	requireMessage(t, env.do(t, http.MethodDelete, "/student/hapus-student/1", ""), http.StatusNotFound, "Data student dengan Id 1 tidak ditemukan")
}

func TestStudentFailures(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/student/add-student", `{"name":"Andi"}`).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/student/add-student", `{"name":"Budi"}`).Code)

	requireMessage(t, env.do(t, http.MethodPost, "/student/add-student", `{"name":"Andi"}`), http.StatusConflict, msgStudentConflict)
	requireMessage(t, env.do(t, http.MethodPost, "/student/add-student", `{"name":""}`), http.StatusBadRequest, "Nama student tidak boleh kosong")
	requireMessage(t, env.do(t, http.MethodPost, "/student/add-student", `{"name":"`+strings.Repeat("é", 256)+`"}`), http.StatusBadRequest, "Nama student maksimal 255 karakter")
	requireMessage(t, env.do(t, http.MethodPost, "/student/add-student", `{"id":1,"name":"Citra"}`), http.StatusBadRequest, msgIDOnCreate)

	requireMessage(t, env.do(t, http.MethodPut, "/student/edit-student", `{"name":"Citra"}`), http.StatusBadRequest, msgStudentNoID)
	requireMessage(t, env.do(t, http.MethodPut, "/student/edit-student", `{"id":1}`), http.StatusBadRequest, "Nama student tidak boleh kosong")
	requireMessage(t, env.do(t, http.MethodPut, "/student/edit-student", `{"id":9999,"name":"Citra"}`), http.StatusNotFound, "Data student dengan Id 9999 tidak ditemukan")
	requireMessage(t, env.do(t, http.MethodPut, "/student/edit-student", `{"id":2,"name":"Andi"}`), http.StatusConflict, msgStudentConflict)

	students, err := env.store.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, "Budi", students[1].Name)
}
