package ebitensurface

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/spritehorde/horde"
	"github.com/stretchr/testify/assert"
)

func TestToRectangle(t *testing.T) {
	r := toRectangle(horde.Rect{X: 229, Y: 0, W: 229, H: 171})
	assert.Equal(t, image.Rect(229, 0, 458, 171), r)
}

func TestUploadSkipsMissingSheets(t *testing.T) {
	s := New(nil)

	assert.Nil(t, s.upload(nil))

	var missing *ebiten.Image
	assert.Nil(t, s.upload(missing))
}

func TestNilTargetIsNoop(t *testing.T) {
	s := New(nil)

	assert.NotPanics(t, func() {
		s.Clear(horde.Rect{W: 10, H: 10})
		s.Blit(nil, horde.Rect{W: 1, H: 1}, horde.Rect{W: 1, H: 1}, 1)
		s.StrokeLine(0, 0, 10, 10)
	})
}
