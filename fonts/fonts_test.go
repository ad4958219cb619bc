package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLoad(t *testing.T) {
	require.NoError(t, Load())
	require.NoError(t, Load())

	for _, name := range []FontName{Body, Title, Message} {
		face := name.Get()
		require.NotNil(t, face, name)
		assert.Positive(t, font.MeasureString(face, "Merlinio").Ceil(), name)
	}
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 12))
}
