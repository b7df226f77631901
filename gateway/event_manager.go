package gateway

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

type eventManager struct {
	subscriptions     map[subscriptionID]*eventSubscription
	subscriptionsLock sync.RWMutex
	logger            hclog.Logger
}

func newEventManager(logger hclog.Logger) *eventManager {
	return &eventManager{
		logger:        logger.Named("event-manager"),
		subscriptions: make(map[subscriptionID]*eventSubscription),
	}
}

// SubscribeResult is the channel handle handed to a change listener
type SubscribeResult struct {
	SubscriptionID      string
	SubscriptionChannel chan *Event
}

// subscribe registers a new listener for gateway configuration events
func (em *eventManager) subscribe(eventTypes []EventType) *SubscribeResult {
	em.subscriptionsLock.Lock()
	defer em.subscriptionsLock.Unlock()

	id := uuid.New().String()
	subscription := &eventSubscription{
		eventTypes: eventTypes,
		outputCh:   make(chan *Event, 1),
		doneCh:     make(chan struct{}),
	}

	em.subscriptions[subscriptionID(id)] = subscription
	em.logger.Debug("added new subscription", "id", id)

	return &SubscribeResult{
		SubscriptionID:      id,
		SubscriptionChannel: subscription.outputCh,
	}
}

// cancelSubscription stops a subscription for gateway configuration events
func (em *eventManager) cancelSubscription(id string) {
	em.subscriptionsLock.Lock()
	defer em.subscriptionsLock.Unlock()

	if subscription, ok := em.subscriptions[subscriptionID(id)]; ok {
		subscription.close()
		delete(em.subscriptions, subscriptionID(id))
		em.logger.Debug("canceled subscription", "id", id)
	}
}

// close stops the event manager, effectively cancelling all subscriptions
func (em *eventManager) close() {
	em.subscriptionsLock.Lock()
	defer em.subscriptionsLock.Unlock()

	for id, subscription := range em.subscriptions {
		subscription.close()
		delete(em.subscriptions, id)
	}
}

// fireEvent is a helper method for alerting listeners of a new gateway event
func (em *eventManager) fireEvent(event *Event) {
	em.subscriptionsLock.RLock()
	defer em.subscriptionsLock.RUnlock()

	for _, subscription := range em.subscriptions {
		go func(subscription *eventSubscription) {
			subscription.pushEvent(event)
		}(subscription)
	}
}
