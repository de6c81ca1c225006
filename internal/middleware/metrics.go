package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requisicoesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "painel_http_requisicoes_total",
		Help: "Total de requisições HTTP por método, rota e status.",
	}, []string{"metodo", "rota", "status"})

	duracaoRequisicao = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "painel_http_duracao_segundos",
		Help:    "Duração das requisições HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"metodo", "rota"})
)

// Metrics alimenta os contadores expostos em /metrics no servidor de monitoração.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		timer := prometheus.NewTimer(duracaoRequisicao.WithLabelValues(c.Method(), c.Route().Path))

		err := c.Next()

		timer.ObserveDuration()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		requisicoesTotal.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()

		return err
	}
}
