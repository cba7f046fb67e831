// Package metrics exposes simulation counters and gauges to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the simulation metrics and satisfies game.Recorder.
type Collector struct {
	gatherer prometheus.Gatherer

	TicksTotal   prometheus.Counter
	TickDuration prometheus.Histogram
	Players      prometheus.Gauge
	FoodItems    prometheus.Gauge
	DeathsTotal  *prometheus.CounterVec
}

// New registers the arena metrics against reg, defaulting to the global
// Prometheus registry when nil.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_ticks_total",
			Help: "Total number of completed simulation ticks.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arena_tick_duration_seconds",
			Help:    "Wall time spent executing one simulation tick.",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
		Players: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arena_players",
			Help: "Current number of players in the world (alive or dead).",
		}),
		FoodItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arena_food_items",
			Help: "Current number of live food items.",
		}),
		DeathsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_deaths_total",
			Help: "Total player deaths, labeled by cause.",
		}, []string{"cause"}),
	}

	for _, col := range []prometheus.Collector{
		c.TicksTotal, c.TickDuration, c.Players, c.FoodItems, c.DeathsTotal,
	} {
		if err := reg.Register(col); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return nil, err
		}
	}
	return c, nil
}

// ObserveTick records one completed tick and its duration.
func (c *Collector) ObserveTick(d time.Duration) {
	if c == nil {
		return
	}
	c.TicksTotal.Inc()
	c.TickDuration.Observe(d.Seconds())
}

// SetCounts updates the player and food gauges.
func (c *Collector) SetCounts(players, food int) {
	if c == nil {
		return
	}
	c.Players.Set(float64(players))
	c.FoodItems.Set(float64(food))
}

// CountDeath increments the death counter for one cause.
func (c *Collector) CountDeath(cause string) {
	if c == nil {
		return
	}
	c.DeathsTotal.WithLabelValues(cause).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
