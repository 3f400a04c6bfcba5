package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"dasar", "Jakarta Selatan", 100, "jakarta-selatan"},
		{"diakritik", "Médan Café", 100, "medan-cafe"},
		{"simbol dikompres", "a  &&  b -- c", 100, "a-b-c"},
		{"trim ujung", "--halo--", 100, "halo"},
		{"kosong fallback", "   ", 100, "item"},
		{"hanya simbol fallback", "###", 100, "item"},
		{"potong maxLen", "abcdefghij", 5, "abcde"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in, tc.maxLen))
		})
	}
}

func TestTrimForSuffix(t *testing.T) {
	// base+suffix harus muat di maxLen
	got := trimForSuffix("jakarta-selatan", "-2", 10)
	assert.LessOrEqual(t, len(got)+2, 10)
	assert.Equal(t, "jakarta", got) // trailing '-' ikut dibuang

	// suffix lebih panjang dari maxLen → fallback pendek
	assert.Equal(t, "x", trimForSuffix("abc", "-123456", 5))
}

func TestGenerateCUID(t *testing.T) {
	a := GenerateCUID()
	b := GenerateCUID()

	assert.Len(t, a, 25)
	assert.Equal(t, byte('c'), a[0])
	assert.NotEqual(t, a, b)
}
