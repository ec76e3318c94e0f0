package stats

// This file contains helpers around daily stats. It complements stats.go.

// Reset clears all in-memory counters.
// Intended for tests and dev convenience.
func Reset() {
	statsMu.Lock()
	defer statsMu.Unlock()
	totalDice = 0
	for k := range valueCounts {
		delete(valueCounts, k)
	}
	for k := range dailyHigh {
		delete(dailyHigh, k)
	}
}
