package inkpress_test

import (
	"testing"

	"github.com/inkpress/inkpress"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "golang", "golang"},
		{"mixed case", "GoLang", "golang"},
		{"spaces become hyphens", "distributed systems", "distributed-systems"},
		{"runs collapse", "go  &  sql", "go-sql"},
		{"surrounding noise trimmed", "  #Hot Takes!  ", "hot-takes"},
		{"digits survive", "web3 stuff", "web3-stuff"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inkpress.Slugify(tc.in))
		})
	}
}
