package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPortugueseNIFValid(t *testing.T) {
	tests := []struct {
		name string
		nif  string
		want bool
	}{
		{name: "valid NIF", nif: "123456789", want: true},
		{name: "valid NIF with zero check digit", nif: "501442600", want: true},
		{name: "bad check digit", nif: "123456780", want: false},
		{name: "too short", nif: "12345678", want: false},
		{name: "too long", nif: "1234567890", want: false},
		{name: "non numeric", nif: "12345678a", want: false},
		{name: "empty", nif: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPortugueseNIFValid(tt.nif))
		})
	}
}

func TestIsSpanishNIFValid(t *testing.T) {
	tests := []struct {
		name string
		nif  string
		want bool
	}{
		{name: "valid DNI", nif: "12345678Z", want: true},
		{name: "valid DNI lowercase letter", nif: "12345678z", want: true},
		{name: "wrong control letter", nif: "12345678A", want: false},
		{name: "valid NIE with X", nif: "X1234567L", want: true},
		{name: "valid NIE with Z", nif: "Z1234567R", want: true},
		{name: "NIE wrong letter", nif: "X1234567A", want: false},
		{name: "too short", nif: "1234567Z", want: false},
		{name: "letters in number part", nif: "12A45678Z", want: false},
		{name: "empty", nif: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSpanishNIFValid(tt.nif))
		})
	}
}

func TestIsPostalCodeValid(t *testing.T) {
	tests := []struct {
		name    string
		country string
		code    string
		want    bool
	}{
		{name: "valid PT code", country: "PT", code: "1000-001", want: true},
		{name: "PT missing dash", country: "PT", code: "10000001", want: false},
		{name: "PT wrong length", country: "PT", code: "1000-01", want: false},
		{name: "PT letters", country: "pt", code: "10A0-001", want: false},
		{name: "valid ES code", country: "ES", code: "28001", want: true},
		{name: "ES too short", country: "ES", code: "2800", want: false},
		{name: "ES letters", country: "es", code: "2800A", want: false},
		{name: "unknown country non empty", country: "FR", code: "75001", want: true},
		{name: "unknown country empty", country: "FR", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPostalCodeValid(tt.country, tt.code))
		})
	}
}
