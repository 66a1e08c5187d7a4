package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation outcome metrics
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plateforge_validations_total",
			Help: "Total number of design validations performed",
		},
		[]string{"result"}, // valid, invalid, or error
	)

	validationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plateforge_validation_errors_total",
			Help: "Total number of blocking validation errors by check kind",
		},
		[]string{"kind"}, // missing_field, out_of_range, text_content, relational
	)
)
