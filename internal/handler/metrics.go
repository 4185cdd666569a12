package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	productsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ecommerce_service",
			Subsystem: "catalog",
			Name:      "products_created_total",
			Help:      "Total number of products added to the catalog",
		},
	)

	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ecommerce_service",
			Subsystem: "orders",
			Name:      "orders_created_total",
			Help:      "Total number of successfully created orders",
		},
	)

	ordersRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommerce_service",
			Subsystem: "orders",
			Name:      "orders_rejected_total",
			Help:      "Total number of orders rejected by stock checks",
		},
		[]string{"reason"},
	)

	orderEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommerce_service",
			Subsystem: "kafka_producer",
			Name:      "order_events_published_total",
			Help:      "Total number of order events written to Kafka",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		productsCreated,
		ordersCreated,
		ordersRejected,
		orderEventsPublished,
	)
}
