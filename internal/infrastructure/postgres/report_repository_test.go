package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldHolderTR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"AYŞE YILMAZ", "ayşe yılmaz"},
		{"İSKAYA", "iskaya"},   // noktalı İ → i
		{"IŞIK", "ışık"},       // noktasız I → ı
		{"Muhasebe", "muhasebe"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, foldHolderTR(tc.in), "girdi: %q", tc.in)
	}
}
