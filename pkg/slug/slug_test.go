package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "simple name", input: "Jane Doe", want: "jane-doe"},
		{name: "diacritics", input: "José Pérez", want: "jose-perez"},
		{name: "enye", input: "Begoña Núñez", want: "begona-nunez"},
		{name: "umlauts and hyphen", input: "Müller-Lüdenscheidt", want: "muller-ludenscheidt"},
		{name: "punctuation runs collapse", input: "Jane R. Doe", want: "jane-r-doe"},
		{name: "apostrophe", input: "O'Brien", want: "o-brien"},
		{name: "surrounding whitespace", input: "   Ana   Perez  ", want: "ana-perez"},
		{name: "leading and trailing symbols", input: "--¡Hola!--", want: "hola"},
		{name: "digits kept", input: "Zoë 2", want: "zoe-2"},
		{name: "only symbols", input: "¿?¡!", want: ""},
		{name: "non latin script", input: "李雷", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	for _, in := range []string{"José Pérez", "Jane R. Doe", "a--b", "ana-perez1"} {
		once := Make(in)
		assert.Equal(t, once, Make(once), "input %q", in)
	}
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "ana-perez1", WithSuffix("ana-perez", 1))
	assert.Equal(t, "ana-perez12", WithSuffix("ana-perez", 12))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("jane-doe"))
	assert.True(t, Valid("ana-perez1"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("Jane-Doe"))
	assert.False(t, Valid("-jane"))
}
