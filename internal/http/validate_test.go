package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestTextFieldCountsRunes(t *testing.T) {
	field := textField{missing: "missing", invalid: "invalid", min: 3, max: 5}

	_, msg := field.check(nil)
	assert.Equal(t, "missing", msg)
	_, msg = field.check(ptr("  \t "))
	assert.Equal(t, "missing", msg)
	_, msg = field.check(ptr("ab"))
	assert.Equal(t, "invalid", msg)

	v, msg := field.check(ptr(" ñáé "))
	assert.Empty(t, msg)
	assert.Equal(t, "ñáé", v)

	_, msg = field.check(ptr(strings.Repeat("ü", 6)))
	assert.Equal(t, "invalid", msg)
}

func TestPatterns(t *testing.T) {
	for _, nip := range []string{"12345678", "12345678901234567890"} {
		_, msg := teacherNIP.check(ptr(nip))
		assert.Empty(t, msg, nip)
	}
	for _, nip := range []string{"1234567", "123456789012345678901", "1234 5678", "١٢٣٤٥٦٧٨"} {
		_, msg := teacherNIP.check(ptr(nip))
		assert.Equal(t, "NIP harus angka 8–20 digit", msg, nip)
	}

	_, msg := teacherNomorHP.check(ptr("+6281234567890"))
	assert.Equal(t, "Nomor HP harus angka 10–15 digit", msg)
	_, msg = teacherNomorHP.check(ptr("081234567890"))
	assert.Empty(t, msg)
}

func TestCheckKapasitas(t *testing.T) {
	_, msg := checkKapasitas(nil)
	assert.Equal(t, msgKapasitasMissing, msg)
	_, msg = checkKapasitas(ptr(int32(-1)))
	assert.Equal(t, msgKapasitasMin, msg)
	v, msg := checkKapasitas(ptr(int32(1)))
	assert.Empty(t, msg)
	assert.Equal(t, int32(1), v)
}
