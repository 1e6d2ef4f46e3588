package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain lowercase", "laptop", "laptop"},
		{"uppercase folds", "LAPTOP", "laptop"},
		{"accents stripped", "Teléfono Inalámbrico", "telefono inalambrico"},
		{"tilde n kept as n", "Diseño", "diseno"},
		{"diaeresis stripped", "Pingüino", "pinguino"},
		{"whitespace trimmed", "  Cámara  ", "camara"},
		{"empty string", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.in))
		})
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	// Query text and field text must land on the same normal form.
	assert.Equal(t, Normalize("CALIFICACIÓN"), Normalize("calificacion"))
	assert.Equal(t, Normalize("Tecnología"), Normalize(" TECNOLOGIA "))
}
