package services

import (
	"log"
	"sync"

	"openshelf/internal/core/domain"
)

// Observer receives circulation events. Delivery is synchronous and
// best-effort: a failing observer is skipped, never retried.
type Observer interface {
	Name() string
	OnEvent(item *domain.Item, message string) error
}

// NotificationService is the in-process dispatcher for circulation
// events. Observers are notified in registration order.
type NotificationService struct {
	mu        sync.Mutex
	observers []Observer
}

// NewNotificationService creates a dispatcher with no observers
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Subscribe registers an observer. A second observer with the same name
// is ignored.
func (s *NotificationService) Subscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.observers {
		if o.Name() == observer.Name() {
			return
		}
	}
	s.observers = append(s.observers, observer)
	log.Printf("✅ Observer registered: %s", observer.Name())
}

// Unsubscribe removes the observer with the given name
func (s *NotificationService) Unsubscribe(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, o := range s.observers {
		if o.Name() == name {
			s.observers = append(s.observers[:idx], s.observers[idx+1:]...)
			log.Printf("✅ Observer removed: %s", name)
			return
		}
	}
}

// Publish delivers an event to every observer in registration order.
// An observer error is logged and delivery continues; the transaction
// that raised the event is never rolled back for a notification.
func (s *NotificationService) Publish(item *domain.Item, message string) {
	s.mu.Lock()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		if err := o.OnEvent(item, message); err != nil {
			log.Printf("⚠️ Observer %s failed, skipping: %v", o.Name(), err)
		}
	}
}

// LogObserver writes every event to the process log. It is the default
// observer wired in at startup.
type LogObserver struct{}

// Name implements Observer
func (LogObserver) Name() string { return "log" }

// OnEvent implements Observer
func (LogObserver) OnEvent(item *domain.Item, message string) error {
	log.Printf("📢 [%s] %s", item.ID, message)
	return nil
}
