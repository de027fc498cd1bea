package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docgen_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgen_token_verifications_total",
			Help: "Total number of access token verification attempts by status.",
		},
		[]string{"status"},
	)

	generationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgen_generation_runs_total",
			Help: "Total number of bulk generation runs by outcome.",
		},
		[]string{"outcome"},
	)

	refinementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docgen_refinements_total",
		Help: "Total number of successful content refinements.",
	})

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgen_exports_total",
			Help: "Total number of successful document exports by format.",
		},
		[]string{"format"},
	)
)
