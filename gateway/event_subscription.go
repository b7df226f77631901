package gateway

type subscriptionID string

type eventSubscription struct {
	// eventTypes is the list of subscribed event types
	eventTypes []EventType

	// outputCh is the update channel for the subscriber
	outputCh chan *Event

	// doneCh indicating that the subscription is terminated
	doneCh chan struct{}
}

// eventSupported checks if the event is supported by the subscription
func (es *eventSubscription) eventSupported(eventType EventType) bool {
	if len(es.eventTypes) == 0 {
		// empty filter subscribes to everything
		return true
	}

	for _, supportedType := range es.eventTypes {
		if supportedType == eventType {
			return true
		}
	}

	return false
}

// close stops the event subscription
func (es *eventSubscription) close() {
	close(es.doneCh)
}

// pushEvent sends the event off for processing by the subscription. [BLOCKING]
func (es *eventSubscription) pushEvent(event *Event) {
	if es.eventSupported(event.Type) {
		select {
		case es.outputCh <- event: // Pass the event to the output
		case <-es.doneCh: // Break if a close signal has been received
			return
		}
	}
}
