package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Los metacaracteres de LIKE dentro del término de búsqueda se tratan como
// literales: un "%" en el término no debe comportarse como comodín.
func TestEscapeLike(t *testing.T) {
	cases := []struct{ in, want string }{
		{"tornillo", "tornillo"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`a\b`, `a\\b`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLike(tc.in), "término: %q", tc.in)
	}
}
