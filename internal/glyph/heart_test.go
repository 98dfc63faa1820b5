package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeartCoverage(t *testing.T) {
	const size = 64
	m := Heart(size)

	assert.Equal(t, size, m.Bounds().Dx())
	assert.Equal(t, size, m.Bounds().Dy())

	cases := []struct {
		name   string
		x, y   int
		filled bool
	}{
		{"centre", 32, 32, true},
		{"left lobe", 16, 19, true},
		{"right lobe", 48, 19, true},
		{"above notch", 32, 4, false},
		{"top left corner", 1, 1, false},
		{"bottom left corner", 2, 62, false},
		{"bottom right corner", 62, 62, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := m.AlphaAt(c.x, c.y).A
			if c.filled {
				assert.Equal(t, uint8(0xff), a)
			} else {
				assert.Zero(t, a)
			}
		})
	}
}

func TestHeartTinySize(t *testing.T) {
	m := Heart(0)
	assert.Equal(t, 1, m.Bounds().Dx())
}
