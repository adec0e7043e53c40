package events

import "slices"

// EventCollector is embedded by domain services that raise events while
// handling a request. The owning use case drains it with ClearEvents and
// hands the batch to a publisher.
type EventCollector struct {
	pending []DomainEvent
}

// Record queues events in the order given. Nil events are dropped.
func (c *EventCollector) Record(evts ...DomainEvent) {
	for _, e := range evts {
		if e != nil {
			c.pending = append(c.pending, e)
		}
	}
}

// Events returns a copy of the queued events.
func (c *EventCollector) Events() []DomainEvent {
	return slices.Clone(c.pending)
}

// ClearEvents drains the queue.
func (c *EventCollector) ClearEvents() []DomainEvent {
	drained := c.pending
	c.pending = nil
	return drained
}
