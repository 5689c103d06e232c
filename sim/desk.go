package sim

// Desk is one slot in the fixed-size desk pool. The pool is sized to the
// maximum desk count the schedule ever activates; only the first K desks
// are eligible for assignment while K desks are active.
type Desk struct {
	ID           int     // ordinal index within the pool
	NextFreeTime float64 // minutes; a desk starts free at time 0
	BusyTime     float64 // cumulative service minutes
	Served       int     // customers served
}

// NewDeskPool allocates n desks, all free at time 0.
func NewDeskPool(n int) []Desk {
	desks := make([]Desk, n)
	for i := range desks {
		desks[i].ID = i
	}
	return desks
}

// FreeAt reports whether the desk is idle at the given time.
func (d *Desk) FreeAt(t float64) bool {
	return t >= d.NextFreeTime
}

// StartService assigns a customer to this desk at start for duration
// minutes, advancing the customer through InService to Departed and
// the desk's own bookkeeping.
func (d *Desk) StartService(c *Customer, start, duration float64) {
	c.BeginService(start)
	c.Depart(start + duration)
	d.NextFreeTime = start + duration
	d.BusyTime += duration
	d.Served++
}

// Utilization returns the fraction of windowMinutes this desk spent busy,
// capped at 1. A desk busy past closing time does not report over 100%.
func (d *Desk) Utilization(windowMinutes float64) float64 {
	if windowMinutes <= 0 {
		return 0
	}
	u := d.BusyTime / windowMinutes
	if u > 1 {
		return 1
	}
	return u
}
