package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts game activity. A nil *Metrics records nothing.
type Metrics struct {
	movesTotal    *prometheus.CounterVec
	flipsTotal    prometheus.Counter
	gamesFinished *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		movesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "termflip",
			Name:      "moves_total",
			Help:      "Moves played, by player color.",
		}, []string{"player"}),
		flipsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "termflip",
			Name:      "flips_total",
			Help:      "Discs captured by played moves.",
		}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "termflip",
			Name:      "games_finished_total",
			Help:      "Games that reached a terminal board, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.movesTotal, m.flipsTotal, m.gamesFinished)

	return m
}

func (m *Metrics) movePlayed(player string, captures int) {
	if m == nil {
		return
	}
	m.movesTotal.WithLabelValues(player).Inc()
	m.flipsTotal.Add(float64(captures))
}

func (m *Metrics) gameFinished(outcome Outcome) {
	if m == nil {
		return
	}
	m.gamesFinished.WithLabelValues(outcome.String()).Inc()
}
