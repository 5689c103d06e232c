package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomers_ArenaInArrivalOrder(t *testing.T) {
	customers := NewCustomers([]float64{1.5, 3.0, 7.25})
	require.Len(t, customers, 3)
	for i, c := range customers {
		assert.Equal(t, i, c.ID)
		assert.Equal(t, Waiting, c.State())
	}
	assert.Equal(t, 3.0, customers[1].ArrivalTime)
}

func TestCustomer_Lifecycle(t *testing.T) {
	c := Customer{ID: 0, ArrivalTime: 10.0}

	// Waiting: no derived times are readable yet.
	_, ok := c.WaitTime()
	assert.False(t, ok)
	_, ok = c.ServiceDuration()
	assert.False(t, ok)
	_, ok = c.TotalTime()
	assert.False(t, ok)

	c.BeginService(12.5)
	assert.Equal(t, InService, c.State())
	wait, ok := c.WaitTime()
	require.True(t, ok)
	assert.Equal(t, 2.5, wait)
	_, ok = c.ServiceDuration()
	assert.False(t, ok, "service duration undefined until departed")

	c.Depart(20.5)
	assert.Equal(t, Departed, c.State())
	dur, ok := c.ServiceDuration()
	require.True(t, ok)
	assert.Equal(t, 8.0, dur)
	total, ok := c.TotalTime()
	require.True(t, ok)
	assert.Equal(t, 10.5, total)
}

func TestCustomer_IllegalTransitionsPanic(t *testing.T) {
	c := Customer{ID: 1, ArrivalTime: 0}
	assert.Panics(t, func() { c.Depart(5) }, "Depart before BeginService")

	c.BeginService(1)
	assert.Panics(t, func() { c.BeginService(2) }, "BeginService twice")

	c.Depart(3)
	assert.Panics(t, func() { c.Depart(4) }, "Depart twice")
}

func TestCustomerState_String(t *testing.T) {
	assert.Equal(t, "waiting", Waiting.String())
	assert.Equal(t, "in_service", InService.String())
	assert.Equal(t, "departed", Departed.String())
}
