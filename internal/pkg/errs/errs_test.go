//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"fitcoach-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")

	t.Run("元のエラーと目印の両方でIsが成立する", func(t *testing.T) {
		base := errors.New("base")
		marked := errs.Mark(errs.Wrap(base, "context"), sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, base))
		assert.Contains(t, marked.Error(), "context")
	})

	t.Run("目印は標準のerrors.Isからは見えない", func(t *testing.T) {
		marked := errs.Mark(errors.New("base"), sentinel)

		assert.False(t, errors.Is(marked, sentinel))
	})

	t.Run("nilに付けると目印自体を返す", func(t *testing.T) {
		assert.Same(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "noop"))
	assert.NoError(t, errs.Wrapf(nil, "noop %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.New("boom")

	lines := errs.ExtractStackLines(err, 3)

	assert.Len(t, lines, 3)
	assert.Equal(t, "boom", lines[0])
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
