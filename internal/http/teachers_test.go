package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semaphore/masterdata/internal/config"
)

const budi = `{"nama":"Budi Santoso","nip":"12345678","nomorHp":"081234567890","alamat":"Jl. Merdeka 1"}`

func TestCreateAndGetTeacher(t *testing.T) {
	env := newTestEnv(t, config.Config{})

	rec := env.do(t, http.MethodPost, "/guru/add-guru", budi)
	resp := requireMessage(t, rec, http.StatusCreated, "Berhasil menambahkan data Guru baru (id: 1)")
	require.NotNil(t, resp.ID)
	assert.Positive(t, *resp.ID)

	rec = env.do(t, http.MethodGet, "/guru/get-guru?id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"nama":"Budi Santoso","nip":"12345678","nomorHp":"081234567890","alamat":"Jl. Merdeka 1"}`, rec.Body.String())

	stored, err := env.store.GetTeacher(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, stored.CreatedDate, stored.ModifiedDate)
	assert.False(t, stored.CreatedDate.IsZero())
}

func TestCreateTeacherTrimsFields(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	rec := env.do(t, http.MethodPost, "/guru/add-guru", `{"nama":"  Siti Aminah ","nip":" 87654321 ","nomorHp":"089876543210","alamat":" Jl. Kenanga "}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/guru/get-guru?id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got teacherResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Siti Aminah", got.Nama)
	assert.Equal(t, "87654321", got.NIP)
	assert.Equal(t, "Jl. Kenanga", got.Alamat)
}

func TestCreateTeacherValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"short nip", `{"nama":"Budi Santoso","nip":"123","nomorHp":"081234567890","alamat":"Jl. Merdeka 1"}`, "NIP harus angka 8–20 digit"},
		{"missing everything", `{}`, "Nama guru tidak boleh kosong"},
		{"blank nama", `{"nama":"   ","nip":"123"}`, "Nama guru tidak boleh kosong"},
		{"short nama", `{"nama":"Bu","nip":"123"}`, "Nama harus 3-100 karakter"},
		{"missing nip", `{"nama":"Budi Santoso"}`, "NIP tidak boleh kosong"},
		{"letters in nip", `{"nama":"Budi Santoso","nip":"1234567a"}`, "NIP harus angka 8–20 digit"},
		{"missing phone", `{"nama":"Budi Santoso","nip":"12345678"}`, "Nomor HP tidak boleh kosong"},
		{"short phone", `{"nama":"Budi Santoso","nip":"12345678","nomorHp":"0812"}`, "Nomor HP harus angka 10–15 digit"},
		{"missing alamat", `{"nama":"Budi Santoso","nip":"12345678","nomorHp":"081234567890"}`, "Alamat tidak boleh kosong"},
		{"id on create", `{"id":5,"nama":"Budi Santoso","nip":"12345678","nomorHp":"081234567890","alamat":"Jl. Merdeka 1"}`, msgIDOnCreate},
		{"malformed", `{"nama":`, msgInvalidFormat},
		{"unknown field", `{"nama":"Budi Santoso","jabatan":"wali kelas"}`, msgInvalidFormat},
		{"wrong type", `{"nama":12}`, msgInvalidFormat},
	}

	env := newTestEnv(t, config.Config{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/guru/add-guru", tc.body)
			resp := requireMessage(t, rec, http.StatusBadRequest, tc.message)
			assert.Equal(t, codeValidation, resp.Error)
			assert.Nil(t, resp.ID)
		})
	}

	teachers, err := env.store.ListTeachers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, teachers)
}

func TestCreateTeacherConflict(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/guru/add-guru", budi).Code)

	sameNIP := `{"nama":"Siti Aminah","nip":"12345678","nomorHp":"089876543210","alamat":"Jl. Kenanga"}`
	resp := requireMessage(t, env.do(t, http.MethodPost, "/guru/add-guru", sameNIP), http.StatusConflict, msgTeacherConflict)
	assert.Equal(t, codeConflict, resp.Error)

	samePhone := `{"nama":"Siti Aminah","nip":"87654321","nomorHp":"081234567890","alamat":"Jl. Kenanga"}`
	requireMessage(t, env.do(t, http.MethodPost, "/guru/add-guru", samePhone), http.StatusConflict, msgTeacherConflict)

	rec := env.do(t, http.MethodGet, "/guru/list-guru", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []teacherResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestGetTeacherInvalidID(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	for _, path := range []string{"/guru/get-guru", "/guru/get-guru?id=abc", "/guru/get-guru?id=0", "/guru/get-guru?id=-1"} {
		requireMessage(t, env.do(t, http.MethodGet, path, ""), http.StatusBadRequest, msgInvalidID)
	}
	resp := requireMessage(t, env.do(t, http.MethodGet, "/guru/get-guru?id=42", ""), http.StatusNotFound, "Data Guru dengan Id 42 tidak ditemukan")
	assert.Equal(t, codeNotFound, resp.Error)
}

func TestUpdateTeacher(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	created := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	env.server.now = func() time.Time { return created }
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/guru/add-guru", budi).Code)

	updated := created.Add(time.Hour)
	env.server.now = func() time.Time { return updated }
	rec := env.do(t, http.MethodPost, "/guru/edit-guru", `{"id":1,"nama":"Budi S.","nip":"12345679"}`)
	resp := requireMessage(t, rec, http.StatusOK, "Berhasil mengubah data Guru dengan Id 1")
	require.NotNil(t, resp.ID)
	assert.Equal(t, int32(1), *resp.ID)

	stored, err := env.store.GetTeacher(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Budi S.", stored.Nama)
	assert.Equal(t, "12345679", stored.NIP)
	assert.Equal(t, "081234567890", stored.NomorHP)
	assert.Equal(t, "Jl. Merdeka 1", stored.Alamat)
	assert.True(t, created.Equal(stored.CreatedDate))
	assert.True(t, updated.Equal(stored.ModifiedDate))

	// A clock that runs behind must not move modified_date backwards.
	env.server.now = func() time.Time { return created }
	rec = env.do(t, http.MethodPost, "/guru/edit-guru", `{"id":1,"nama":"Budi S.","nip":"12345679","alamat":"Jl. Sudirman 2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	stored, err = env.store.GetTeacher(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Jl. Sudirman 2", stored.Alamat)
	assert.True(t, updated.Equal(stored.ModifiedDate))
}

func TestUpdateTeacherFailures(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/guru/add-guru", budi).Code)
	other := `{"nama":"Siti Aminah","nip":"87654321","nomorHp":"089876543210","alamat":"Jl. Kenanga"}`
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/guru/add-guru", other).Code)

	requireMessage(t, env.do(t, http.MethodPost, "/guru/edit-guru", `{"nama":"Budi Santoso","nip":"12345678"}`), http.StatusBadRequest, msgTeacherNoID)
	requireMessage(t, env.do(t, http.MethodPost, "/guru/edit-guru", `{"id":0,"nama":"Budi Santoso","nip":"12345678"}`), http.StatusBadRequest, msgInvalidID)
	requireMessage(t, env.do(t, http.MethodPost, "/guru/edit-guru", `{"id":1,"nip":"12345678"}`), http.StatusBadRequest, "Nama guru tidak boleh kosong")
	requireMessage(t, env.do(t, http.MethodPost, "/guru/edit-guru", `{"id":1,"nama":"Budi Santoso","nip":"12345678","nomorHp":"12"}`), http.StatusBadRequest, "Nomor HP harus angka 10–15 digit")

	// Validation runs before the lookup.
	requireMessage(t, env.do(t, http.MethodPost, "/guru/edit-guru", `{"id":9999,"nama":"Budi Santoso"}`), http.StatusBadRequest, "NIP tidak boleh kosong")
	requireMessage(t, env.do(t, http.MethodPost, "/guru/edit-guru", `{"id":9999,"nama":"Budi Santoso","nip":"12345678"}`), http.StatusNotFound, "Data Guru dengan Id 9999 tidak ditemukan")

	requireMessage(t, env.do(t, http.MethodPost, "/guru/edit-guru", `{"id":2,"nama":"Siti Aminah","nip":"12345678"}`), http.StatusConflict, msgTeacherConflict)

	stored, err := env.store.GetTeacher(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "87654321", stored.NIP)
}

func TestDeleteTeacher(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/guru/add-guru", budi).Code)

	requireMessage(t, env.do(t, http.MethodDelete, "/guru/hapus-guru/9999", ""), http.StatusNotFound, "Data Guru dengan Id 9999 tidak ditemukan")
	requireMessage(t, env.do(t, http.MethodDelete, "/guru/hapus-guru/abc", ""), http.StatusBadRequest, msgInvalidID)
	requireMessage(t, env.do(t, http.MethodDelete, "/guru/hapus-guru/1", ""), http.StatusOK, "Berhasil menghapus data Guru dengan Id 1")
	requireMessage(t, env.do(t, http.MethodGet, "/guru/get-guru?id=1", ""), http.StatusNotFound, "Data Guru dengan Id 1 tidak ditemukan")

	rec := env.do(t, http.MethodGet, "/guru/list-guru", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
