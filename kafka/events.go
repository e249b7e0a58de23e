package kafka

import "time"

// OrderItem is one purchased basket line inside an order event
type OrderItem struct {
	BookID   string  `json:"book_id"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderPurchasedEvent is emitted after a basket purchase commits
type OrderPurchasedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	UserID    uint        `json:"user_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPurchased = "order.purchased"
)

// Kafka topics
const (
	TopicOrderPurchased = "order-purchased"
)
