package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"budi santoso", "Budi Santoso"},
		{"BUDI SANTOSO", "Budi Santoso"},
		{"  budi   santoso  ", "Budi Santoso"},
		{"budi", "Budi"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.TitleCase(tt.in), "input %q", tt.in)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"081234567890", "081234567890"},
		{"6281234567890", "081234567890"},
		{"+62 812-3456-7890", "081234567890"},
		{"812 3456 7890", "081234567890"},
		{"0812 3456 7890", "081234567890"},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizePhone(tt.in), "input %q", tt.in)
	}
}

func TestBiodataDocumentPaths(t *testing.T) {
	b := &domain.Biodata{PhotoPath: "p.jpg", IDCardPath: "id.jpg"}
	assert.ElementsMatch(t, []string{"p.jpg", "id.jpg"}, b.DocumentPaths())

	empty := &domain.Biodata{}
	assert.Empty(t, empty.DocumentPaths())
}
