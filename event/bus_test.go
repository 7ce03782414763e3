package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishIsSynchronous(t *testing.T) {
	bus := NewBus("store")
	var got []Data
	bus.Subscribe("employee.added", func(d Data) { got = append(got, d) })

	bus.Publish("employee.added", "E1")

	if assert.Len(t, got, 1) {
		assert.Equal(t, "store", got[0].Source)
		assert.Equal(t, "employee.added", got[0].EventType)
		assert.Equal(t, "E1", got[0].Payload)
	}
}

func TestWildcardAndUnsubscribe(t *testing.T) {
	bus := NewBus("store")
	var all, specific int
	stopAll := bus.Subscribe(Wildcard, func(Data) { all++ })
	bus.Subscribe("task.deleted", func(Data) { specific++ })

	bus.Publish("task.deleted", nil)
	bus.Publish("employee.deleted", nil)
	stopAll()
	bus.Publish("task.deleted", nil)

	assert.Equal(t, 2, all)
	assert.Equal(t, 2, specific)
}

func TestPanickingHandlerIsContained(t *testing.T) {
	bus := NewBus("store")
	var after bool
	bus.Subscribe("x", func(Data) { panic("boom") })
	bus.Subscribe("x", func(Data) { after = true })

	assert.NotPanics(t, func() { bus.Publish("x", nil) })
	assert.True(t, after)

	m := bus.GetMetrics()
	assert.Equal(t, int64(1), m["failed_events"])
	assert.Equal(t, int64(1), m["processed_events"])
}
