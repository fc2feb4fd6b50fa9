// Package metrics defines the custom Prometheus metrics for the TMS backend.
// It is the single source of truth for metric names, labels, and help
// strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tms"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - service_level: e.g. "Express", "Standard"
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by service level.",
	},
	[]string{"service_level"},
)

// ShipmentsDeletedTotal counts deleted shipments.
var ShipmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_deleted_total",
		Help:      "Total number of shipments deleted.",
	},
)

// ShipmentQueriesTotal counts list queries served by the filter/sort/paginate
// pipeline.
var ShipmentQueriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipment_queries_total",
		Help:      "Total number of shipment list queries served.",
	},
)
