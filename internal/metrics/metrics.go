// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface services and middleware report through.
type Recorder interface {
	UserRegistered()
	RequestOpened()
	RequestFulfilled()
	DonationRecorded()
	HTTPResponse(status int)
}

// Nop discards every observation. Useful in tests.
type Nop struct{}

func (Nop) UserRegistered()   {}
func (Nop) RequestOpened()    {}
func (Nop) RequestFulfilled() {}
func (Nop) DonationRecorded() {}
func (Nop) HTTPResponse(int)  {}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	usersRegistered   prometheus.Counter
	requestsOpened    prometheus.Counter
	requestsFulfilled prometheus.Counter
	donationsRecorded prometheus.Counter
	httpResponses     *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bloodconnect_users_registered_total",
			Help: "Total donor registrations.",
		}),
		requestsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bloodconnect_requests_opened_total",
			Help: "Total blood requests posted.",
		}),
		requestsFulfilled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bloodconnect_requests_fulfilled_total",
			Help: "Total blood requests marked fulfilled by a donation.",
		}),
		donationsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bloodconnect_donations_recorded_total",
			Help: "Total donations recorded.",
		}),
		httpResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodconnect_http_responses_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.usersRegistered,
		c.requestsOpened,
		c.requestsFulfilled,
		c.donationsRecorded,
		c.httpResponses,
	)

	return c
}

func (c *Collector) UserRegistered()   { c.usersRegistered.Inc() }
func (c *Collector) RequestOpened()    { c.requestsOpened.Inc() }
func (c *Collector) RequestFulfilled() { c.requestsFulfilled.Inc() }
func (c *Collector) DonationRecorded() { c.donationsRecorded.Inc() }

func (c *Collector) HTTPResponse(status int) {
	c.httpResponses.WithLabelValues(strconv.Itoa(status)).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
