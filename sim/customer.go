package sim

import "fmt"

// CustomerState tags where a customer is in its lifecycle. Transitions are
// monotonic within a replication: Waiting -> InService -> Departed.
type CustomerState uint8

const (
	// Waiting means the customer has arrived but holds no desk yet.
	Waiting CustomerState = iota
	// InService means the customer has been assigned a desk.
	InService
	// Departed means service has completed.
	Departed
)

func (s CustomerState) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case InService:
		return "in_service"
	case Departed:
		return "departed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Customer tracks one customer's progress through a replication. ID is the
// customer's index in arrival order; ArrivalTime is fixed at creation, the
// remaining timestamps become defined as the state advances. All times are
// minutes from the start of the operating window.
//
// Timestamps before their state are unreadable by construction: the derived
// accessors return ok=false until the lifecycle admits them.
type Customer struct {
	ID          int
	ArrivalTime float64

	state        CustomerState
	serviceStart float64
	departure    float64
}

// NewCustomers builds the customer arena for one replication, one entry per
// arrival in ascending time order, all in state Waiting.
func NewCustomers(arrivals []float64) []Customer {
	customers := make([]Customer, len(arrivals))
	for i, t := range arrivals {
		customers[i] = Customer{ID: i, ArrivalTime: t}
	}
	return customers
}

// State returns the customer's current lifecycle state.
func (c *Customer) State() CustomerState {
	return c.state
}

// BeginService transitions Waiting -> InService at the given start time.
// Panics on an out-of-order transition: that is a simulator bug, never a
// data condition.
func (c *Customer) BeginService(start float64) {
	if c.state != Waiting {
		panic(fmt.Sprintf("customer %d: BeginService in state %s", c.ID, c.state))
	}
	c.state = InService
	c.serviceStart = start
}

// Depart transitions InService -> Departed at the given completion time.
func (c *Customer) Depart(end float64) {
	if c.state != InService {
		panic(fmt.Sprintf("customer %d: Depart in state %s", c.ID, c.state))
	}
	c.state = Departed
	c.departure = end
}

// WaitTime returns service start minus arrival. ok is false while Waiting.
func (c *Customer) WaitTime() (float64, bool) {
	if c.state == Waiting {
		return 0, false
	}
	return c.serviceStart - c.ArrivalTime, true
}

// ServiceDuration returns departure minus service start.
// ok is false until the customer has Departed.
func (c *Customer) ServiceDuration() (float64, bool) {
	if c.state != Departed {
		return 0, false
	}
	return c.departure - c.serviceStart, true
}

// TotalTime returns departure minus arrival.
// ok is false until the customer has Departed.
func (c *Customer) TotalTime() (float64, bool) {
	if c.state != Departed {
		return 0, false
	}
	return c.departure - c.ArrivalTime, true
}
