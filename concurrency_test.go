package everafter

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineRejectsTransactionFromAnotherGoroutine(t *testing.T) {
	timeline := NewTimeline()
	setup := timeline.Setup()

	var wg sync.WaitGroup
	var message any

	wg.Go(func() {
		defer func() { message = recover() }()
		timeline.Update()
	})
	wg.Wait()

	if assert.NotNil(t, message, "a transaction opened by another goroutine while setup is still open must panic") {
		assert.True(t, strings.Contains(message.(string), "already in progress"))
	}

	setup.Commit()
}

func TestTimelineSerialGoroutinesCanTakeTurns(t *testing.T) {
	timeline := NewTimeline()

	setup := timeline.Setup()
	id := Cell(setup, 0)
	setup.Commit()

	var wg sync.WaitGroup
	wg.Go(func() {
		update := timeline.Update()
		UpdateCell(update, id, 1)
		update.Commit()
	})
	wg.Wait()

	render := timeline.Begin()
	assert.Equal(t, 1, RenderValue(render, id))
	render.Commit()
}
