package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := map[string]string{
		"Hukum Perdata & Bisnis":   "hukum-perdata-bisnis",
		"  Litigasi -- Arbitrase ": "litigasi-arbitrase",
		"Résumé Équipe":            "resume-equipe",
		"Hak Kekayaan Intelektual": "hak-kekayaan-intelektual",
		"!!!":                      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, GenerateSlug(in), in)
	}
}

func TestTitleSlug(t *testing.T) {
	assert.Equal(t, "kabar-terbaru:-uu-cipta-kerja", TitleSlug("Kabar Terbaru: UU Cipta Kerja"))
	assert.Equal(t, "dua-spasi", TitleSlug("  Dua   Spasi "))
	assert.Equal(t, TitleSlug("Same Title"), TitleSlug("same title"))
}
