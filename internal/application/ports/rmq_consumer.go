package ports

import "context"

// RMQConsumer drains the contact-events queue. The bundled worker only
// logs deliveries; downstream systems subscribe with their own consumers.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
