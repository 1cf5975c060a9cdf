package everafter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitiveOutputPanicsBeforeFirstUpdate(t *testing.T) {
	timeline := NewTimeline()

	setup := timeline.Setup()
	id := Cell(setup, 1)
	setup.Commit()

	out := Output(timeline, id)
	assert.PanicsWithValue(t,
		"everafter: read a primitive output before its first update",
		func() { out.Value() },
	)
}

func TestPrimitiveOutputMirrorsItsTarget(t *testing.T) {
	timeline := NewTimeline()

	setup := timeline.Setup()
	a := Cell(setup, 1)
	b := Cell(setup, 2)
	sum := Derived(setup, func(ctx *EvaluationContext) int {
		return Value(ctx, a) + Value(ctx, b)
	})
	setup.Commit()

	out := Output(timeline, sum)

	render := timeline.Begin()
	out.Update(render)
	render.Commit()
	assert.Equal(t, 3, out.Value())

	update := timeline.Update()
	UpdateCell(update, a, 10)
	update.Commit()

	// the output must not change until explicitly refreshed
	assert.Equal(t, 3, out.Value())

	render = timeline.Begin()
	out.Update(render)
	render.Commit()
	assert.Equal(t, 12, out.Value())
}
