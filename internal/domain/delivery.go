package domain

import "time"

// Delivery is one webhook POST from GitHub after it has been authenticated.
type Delivery struct {
	ID         string            // X-GitHub-Delivery, may be empty
	Event      string            // X-GitHub-Event as sent
	Headers    map[string]string // first value of every request header
	Raw        []byte            // exact request body the signature covered
	Body       map[string]any    // parsed body before payload unwrapping
	ReceivedAt time.Time
}
