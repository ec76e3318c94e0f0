// Package stats keeps in-memory roll statistics for the dicebox server.
// Nothing is persisted; the counters live and die with the process.
package stats

import (
	"sync"
	"time"
)

var (
	statsMu     sync.Mutex
	totalDice   int
	valueCounts = make(map[int]int)
	// Per-day high collection roll (by date string YYYY-MM-DD UTC)
	dailyHigh = make(map[string]HighRoll)
)

// HighRoll records the best collection roll seen on a given day.
type HighRoll struct {
	Values []int `json:"values"`
	Sum    int   `json:"sum"`
	At     int64 `json:"at"`
}

// Snapshot is a copy of the counters for the stats endpoint.
type Snapshot struct {
	TotalDice   int         `json:"total_dice"`
	ValueCounts map[int]int `json:"value_counts"`
	DailyHigh   *HighRoll   `json:"daily_high,omitempty"`
}

// RecordValue counts one settled die.
func RecordValue(value int) {
	statsMu.Lock()
	defer statsMu.Unlock()
	totalDice++
	valueCounts[value]++
}

// RecordRoll updates today's high roll if the collection sum beats it.
// Individual dice are expected to have been counted via RecordValue as they
// settled.
func RecordRoll(values []int) {
	sum := 0
	for _, v := range values {
		sum += v
	}
	dateKey := time.Now().UTC().Format("2006-01-02")
	statsMu.Lock()
	defer statsMu.Unlock()
	cur, ok := dailyHigh[dateKey]
	if !ok || sum > cur.Sum {
		vs := make([]int, len(values))
		copy(vs, values)
		dailyHigh[dateKey] = HighRoll{Values: vs, Sum: sum, At: time.Now().Unix()}
	}
}

// Get returns a snapshot of the counters.
func Get() Snapshot {
	dateKey := time.Now().UTC().Format("2006-01-02")
	statsMu.Lock()
	defer statsMu.Unlock()
	counts := make(map[int]int, len(valueCounts))
	for v, n := range valueCounts {
		counts[v] = n
	}
	s := Snapshot{TotalDice: totalDice, ValueCounts: counts}
	if hr, ok := dailyHigh[dateKey]; ok {
		s.DailyHigh = &hr
	}
	return s
}
