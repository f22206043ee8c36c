// file: metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FlagSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctf_flag_submissions_total",
			Help: "Total number of flag submissions",
		},
		[]string{"result"}, // correct / incorrect / duplicate
	)

	SolvesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ctf_solves_total",
			Help: "Total number of counted first solves",
		},
	)

	ScoreboardCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctf_scoreboard_cache_total",
			Help: "Scoreboard cache lookups by outcome",
		},
		[]string{"outcome"}, // hit / miss
	)
)
