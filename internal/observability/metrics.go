package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ChatRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total de consultas al chat",
		},
	)

	TablesParsedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tables_parsed_total",
			Help: "Total de respuestas con tabla de productos parseada",
		},
	)

	SpecResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spec_resolutions_total",
			Help: "Total de fichas resueltas por estrategia",
		},
		[]string{"strategy"},
	)

	SuggestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "suggestions_total",
			Help: "Total de sugerencias de autocompletado servidas",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(
		ChatRequestsTotal,
		TablesParsedTotal,
		SpecResolutionsTotal,
		SuggestionsTotal,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
