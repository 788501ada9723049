// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// RentalReturnedEvent is published when a return is processed. It carries
// enough of the rental snapshot for downstream consumers to log or notify
// without querying the primary database.
type RentalReturnedEvent struct {
	RentalID     uint64  `json:"rental_id"`
	CustomerID   uint64  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	MovieID      uint64  `json:"movie_id"`
	MovieTitle   string  `json:"movie_title"`
	DateOut      string  `json:"date_out"`
	DateReturned string  `json:"date_returned"`
	RentalFee    float64 `json:"rental_fee"`
}

// ReturnedQueueName is the durable queue both the publisher and the consumer
// declare.
const ReturnedQueueName = "rental.returned"
