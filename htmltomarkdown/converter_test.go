package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/punter"
	"github.com/fwojciec/punter/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	t.Run("converts emphasis", func(t *testing.T) {
		t.Parallel()

		got, err := conv.Convert("<div>Click: Gain <b>E</b>.</div>")

		require.NoError(t, err)
		assert.Contains(t, got, "**E**")
	})

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()

		got, err := conv.Convert("<div>Fragile. Blocker.</div>")

		require.NoError(t, err)
		assert.Contains(t, got, "Fragile. Blocker.")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, punter.EINVALID, punter.ErrorCode(err))
	})
}
