package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_bookings_created_total",
		Help: "Bookings successfully created.",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_bookings_cancelled_total",
		Help: "Bookings cancelled.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_booking_conflicts_total",
		Help: "Booking attempts rejected because the slot was taken.",
	})

	AvailabilityQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_availability_queries_total",
		Help: "Day availability lookups served.",
	})
)
