package http

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	nipPattern   = regexp.MustCompile(`^\d{8,20}$`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

// textField describes one string input. Lengths count runes after trimming;
// zero bounds are not checked.
type textField struct {
	missing string
	invalid string
	min     int
	max     int
	pattern *regexp.Regexp
}

// check returns the trimmed value, or the message for the first failing rule.
func (f textField) check(value *string) (string, string) {
	if value == nil {
		return "", f.missing
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return "", f.missing
	}
	n := utf8.RuneCountInString(v)
	if (f.min > 0 && n < f.min) || (f.max > 0 && n > f.max) {
		return "", f.invalid
	}
	if f.pattern != nil && !f.pattern.MatchString(v) {
		return "", f.invalid
	}
	return v, ""
}

var (
	teacherNama = textField{
		missing: "Nama guru tidak boleh kosong",
		invalid: "Nama harus 3-100 karakter",
		min:     3,
		max:     100,
	}
	teacherNIP = textField{
		missing: "NIP tidak boleh kosong",
		invalid: "NIP harus angka 8–20 digit",
		pattern: nipPattern,
	}
	teacherNomorHP = textField{
		missing: "Nomor HP tidak boleh kosong",
		invalid: "Nomor HP harus angka 10–15 digit",
		pattern: phonePattern,
	}
	teacherAlamat = textField{
		missing: "Alamat tidak boleh kosong",
		invalid: "Alamat maksimal 255 karakter",
		max:     255,
	}

	classNama = textField{
		missing: "Nama kelas tidak boleh kosong",
		invalid: "Nama kelas harus antara 3 - 50 karakter",
		min:     3,
		max:     50,
	}
	classDeskripsi = textField{
		missing: "Deskripsi tidak boleh kosong",
		invalid: "Deskripsi harus antara 3 - 100 karakter",
		min:     3,
		max:     100,
	}

	subjectNama = textField{
		missing: "Nama mata pelajaran wajib diisi",
		invalid: "Nama maksimal 20 karakter",
		max:     20,
	}
	subjectDeskripsi = textField{
		missing: "Deskripsi wajib diisi",
		invalid: "Deskripsi maksimal 255 karakter",
		max:     255,
	}

	studentName = textField{
		missing: "Nama student tidak boleh kosong",
		invalid: "Nama student maksimal 255 karakter",
		max:     255,
	}
)

const (
	msgKapasitasMissing = "Kapasitas wajib diisi"
	msgKapasitasMin     = "Kapasitas minimal 1"
)

func checkKapasitas(value *int32) (int32, string) {
	if value == nil {
		return 0, msgKapasitasMissing
	}
	if *value < 1 {
		return 0, msgKapasitasMin
	}
	return *value, ""
}
