package everafter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellTag(t *testing.T) {
	tag := newCellTag(StartRevision())
	assert.Equal(t, Revision(1), tag.Revision())

	tag.update(7)
	assert.Equal(t, Revision(7), tag.Revision())
}

func TestDerivedTag(t *testing.T) {
	t.Run("fresh tag has const revision", func(t *testing.T) {
		tag := newDerivedTag()
		assert.False(t, tag.wasEvaluated())
		assert.Equal(t, ConstRevision, tag.Revision())
	})

	t.Run("revision is the max of captured deps", func(t *testing.T) {
		tag := newDerivedTag()
		low := newCellTag(2)
		high := newCellTag(9)

		tag.reset()
		tag.addDep(low)
		tag.addDep(high)
		tag.done()

		assert.True(t, tag.wasEvaluated())
		assert.Equal(t, Revision(9), tag.Revision())
	})

	t.Run("reset while modifying panics", func(t *testing.T) {
		tag := newDerivedTag()
		tag.reset()
		assert.Panics(t, func() { tag.reset() })
	})

	t.Run("done while idle panics", func(t *testing.T) {
		tag := newDerivedTag()
		assert.Panics(t, func() { tag.done() })
	})

	t.Run("addDep while idle panics", func(t *testing.T) {
		tag := newDerivedTag()
		assert.Panics(t, func() { tag.addDep(newCellTag(1)) })
	})

	t.Run("revision while modifying panics", func(t *testing.T) {
		tag := newDerivedTag()
		tag.reset()
		assert.Panics(t, func() { tag.Revision() })
	})

	t.Run("abort releases modifying without requiring done", func(t *testing.T) {
		tag := newDerivedTag()
		tag.reset()
		tag.abort()
		assert.NotPanics(t, func() { tag.reset() })
	})
}
