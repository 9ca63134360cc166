package inkpress_test

import (
	"testing"

	"github.com/inkpress/inkpress"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	t.Run("formats a national number as E.164", func(t *testing.T) {
		assert.Equal(t, "+14155552671", inkpress.NormalizePhone("(415) 555-2671"))
	})

	t.Run("keeps an already international number", func(t *testing.T) {
		assert.Equal(t, "+442071838750", inkpress.NormalizePhone("+44 20 7183 8750"))
	})

	t.Run("returns the trimmed input when it does not parse", func(t *testing.T) {
		assert.Equal(t, "not-a-number", inkpress.NormalizePhone(" not-a-number "))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", inkpress.NormalizePhone("   "))
	})
}
