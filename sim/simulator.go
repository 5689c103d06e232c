package sim

import "github.com/sirupsen/logrus"

// pendingCustomer is one FIFO wait-queue entry: the customer's arena index
// and the service duration drawn for it at generation time.
type pendingCustomer struct {
	customer *Customer
	duration float64
}

// waitQueue is the FIFO overflow queue of customers an active desk could not
// take on arrival.
type waitQueue struct {
	queue []pendingCustomer
}

// Enqueue adds a customer to the back of the wait queue.
func (wq *waitQueue) Enqueue(p pendingCustomer) {
	wq.queue = append(wq.queue, p)
}

// Dequeue removes and returns the customer at the front of the queue.
// Must not be called on an empty queue.
func (wq *waitQueue) Dequeue() pendingCustomer {
	head := wq.queue[0]
	wq.queue = wq.queue[1:]
	return head
}

// Len returns the number of waiting customers.
func (wq *waitQueue) Len() int {
	return len(wq.queue)
}

// QueueSimulator runs one replication of the multi-desk queue for a
// scenario: it generates an arrival realization from its own seeded RNG and
// processes it in arrival order against the desk schedule.
//
// Each replication needs a fresh QueueSimulator (or at least a fresh seed);
// instances are not safe for concurrent use.
type QueueSimulator struct {
	gen *ArrivalGenerator
}

// NewQueueSimulator creates a simulator whose replication is fully
// determined by seed.
func NewQueueSimulator(seed int64) *QueueSimulator {
	return &QueueSimulator{gen: NewArrivalGenerator(seed)}
}

// Simulate runs a single replication and returns its statistics.
// The scenario must have passed Validate. A realization with zero arrivals
// yields the defined degenerate result, not an error.
func (s *QueueSimulator) Simulate(scenario *ScenarioConfig) ReplicationResult {
	arrivals := s.gen.GenerateArrivals(scenario)
	if len(arrivals) == 0 {
		return emptyResult(scenario)
	}
	durations := s.gen.GenerateServiceTimes(len(arrivals), scenario.MeanServiceTime, DefaultServiceTimeCV)

	customers := NewCustomers(arrivals)
	desks := NewDeskPool(scenario.MaxDesks())
	queue := &waitQueue{}
	queueSamples := []int{}

	// Process arrivals in ascending time order.
	currentTime := 0.0
	for i := range customers {
		c := &customers[i]
		currentTime = c.ArrivalTime
		active := activeDesks(scenario, desks, currentTime)

		if desk := firstFreeDesk(active, currentTime); desk != nil {
			desk.StartService(c, currentTime, durations[i])
		} else {
			queue.Enqueue(pendingCustomer{customer: c, duration: durations[i]})
		}

		drainQueue(queue, active, currentTime)
		queueSamples = append(queueSamples, queue.Len())
	}

	// Drain the remaining queue after the last arrival by advancing the
	// clock to the next desk release. The active desk count is re-evaluated
	// at the advanced time, so desks coming on shift during the drain are
	// picked up and desks going off shift stop taking customers.
	for queue.Len() > 0 {
		active := activeDesks(scenario, desks, currentTime)
		nextFree := active[0].NextFreeTime
		for _, d := range active[1:] {
			if d.NextFreeTime < nextFree {
				nextFree = d.NextFreeTime
			}
		}
		if nextFree > currentTime {
			currentTime = nextFree
		}
		active = activeDesks(scenario, desks, currentTime)

		drainQueue(queue, active, currentTime)
		queueSamples = append(queueSamples, queue.Len())
	}

	logrus.Debugf("replication %q: %d customers served across %d desks",
		scenario.Name, len(customers), len(desks))
	return calculateResult(scenario, customers, desks, queueSamples)
}

// activeDesks returns the prefix of the pool eligible for assignment at time
// t: the first K desks, where K is the scheduled desk count for the hour of
// day containing t.
func activeDesks(scenario *ScenarioConfig, desks []Desk, t float64) []Desk {
	hour := scenario.OperatingHours.Start + int(t/60.0)
	k := scenario.DeskCountAt(hour)
	if k > len(desks) {
		k = len(desks)
	}
	return desks[:k]
}

// firstFreeDesk scans desks in index order and returns the first one free at
// t, or nil. The lowest-index tie-break is a load-bearing, reproducible
// policy: replacing the scan with an earliest-free priority queue changes
// which desk serves whom and is observably different.
func firstFreeDesk(desks []Desk, t float64) *Desk {
	for i := range desks {
		if desks[i].FreeAt(t) {
			return &desks[i]
		}
	}
	return nil
}

// drainQueue repeatedly assigns the head of the wait queue to the first free
// active desk, each assignment starting no earlier than the desk's release
// time. Stops when no active desk is free or the queue is empty.
func drainQueue(queue *waitQueue, active []Desk, currentTime float64) {
	for queue.Len() > 0 {
		desk := firstFreeDesk(active, currentTime)
		if desk == nil {
			return
		}
		head := queue.Dequeue()
		start := currentTime
		if desk.NextFreeTime > start {
			start = desk.NextFreeTime
		}
		desk.StartService(head.customer, start, head.duration)
	}
}

// calculateResult derives the replication statistics once every customer has
// departed.
func calculateResult(scenario *ScenarioConfig, customers []Customer, desks []Desk, queueSamples []int) ReplicationResult {
	waits := make([]float64, 0, len(customers))
	within5 := 0
	for i := range customers {
		w, ok := customers[i].WaitTime()
		if !ok {
			panic("calculateResult: customer never assigned a desk")
		}
		waits = append(waits, w)
		if w <= 5.0 {
			within5++
		}
	}

	maxWait := 0.0
	waitSum := 0.0
	for _, w := range waits {
		waitSum += w
		if w > maxWait {
			maxWait = w
		}
	}

	queueSum := 0
	maxQueue := 0
	for _, q := range queueSamples {
		queueSum += q
		if q > maxQueue {
			maxQueue = q
		}
	}
	meanQueue := 0.0
	if len(queueSamples) > 0 {
		meanQueue = float64(queueSum) / float64(len(queueSamples))
	}

	// Utilization averages only desks that actually served someone: idle
	// pool slots the schedule never exposed would otherwise dilute it.
	windowMinutes := scenario.OperatingHours.Minutes()
	utilSum := 0.0
	activeCount := 0
	for i := range desks {
		if desks[i].Served > 0 {
			utilSum += desks[i].Utilization(windowMinutes)
			activeCount++
		}
	}
	utilization := 0.0
	if activeCount > 0 {
		utilization = utilSum / float64(activeCount)
	}

	return ReplicationResult{
		ScenarioName:     scenario.Name,
		MeanWait:         waitSum / float64(len(waits)),
		MaxWait:          maxWait,
		P95Wait:          percentileOf(waits, 95),
		MeanQueueLength:  meanQueue,
		MaxQueueLength:   maxQueue,
		DeskUtilization:  utilization,
		ServiceLevel5Min: float64(within5) / float64(len(waits)),
		TotalCustomers:   len(customers),
		TotalMinutes:     windowMinutes,
	}
}

// emptyResult is the defined degenerate result for a replication with zero
// arrivals: no waits, no queue, idle desks, and a vacuously met service
// level over the full operating window.
func emptyResult(scenario *ScenarioConfig) ReplicationResult {
	return ReplicationResult{
		ScenarioName:     scenario.Name,
		ServiceLevel5Min: 1.0,
		TotalMinutes:     scenario.OperatingHours.Minutes(),
	}
}
