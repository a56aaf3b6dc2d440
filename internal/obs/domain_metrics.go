package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// CarrierRequestTotal counts outbound carrier calls by endpoint and outcome.
	CarrierRequestTotal *prometheus.CounterVec
	// CarrierRequestLatency records outbound carrier call latency in milliseconds.
	CarrierRequestLatency *prometheus.HistogramVec
	// ShippingOffersExtracted tracks how many service offers each rate check yields.
	ShippingOffersExtracted prometheus.Histogram
	// MarketPriceUpdateTotal counts administrative market price writes by result.
	MarketPriceUpdateTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CarrierRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "carrier_requests_total",
			Help:      "Count of outbound carrier requests by endpoint and result.",
		}, []string{"endpoint", "result"})
		CarrierRequestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "carrier_request_duration_ms",
			Help:      "Latency of outbound carrier requests in milliseconds.",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"endpoint"})
		ShippingOffersExtracted = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shipping_offers_extracted",
			Help:      "Number of shipping service offers extracted per rate check.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		})
		MarketPriceUpdateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "market_price_updates_total",
			Help:      "Count of market price update attempts by result.",
		}, []string{"result"})

		registerDomainCollector(reg, CarrierRequestTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CarrierRequestTotal = v
			}
		})
		registerDomainCollector(reg, CarrierRequestLatency, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.HistogramVec); ok {
				CarrierRequestLatency = v
			}
		})
		registerDomainCollector(reg, ShippingOffersExtracted, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				ShippingOffersExtracted = v
			}
		})
		registerDomainCollector(reg, MarketPriceUpdateTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				MarketPriceUpdateTotal = v
			}
		})
	})
}

func registerDomainCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
