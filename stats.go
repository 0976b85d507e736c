package wfq

//
// Summary statistics over a completed run
//

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics over a completed simulation run.
// QueueingDelay is t_start - arrival_time for every departure;
// InterDepartureGap is the gap between consecutive t_start values.
type Summary struct {
	QueueingDelayMedian float64
	QueueingDelayMean   float64
	QueueingDelayStdDev float64

	InterDepartureGapMedian float64
	InterDepartureGapMean   float64

	Count int
}

// Summarize computes a [Summary] over departures, which must be in
// transmission order (the order [Scheduler.Run] emits them in). It
// returns an error only if the underlying stats computation fails, which
// happens only when departures is empty.
func Summarize(departures []Departure) (Summary, error) {
	if len(departures) == 0 {
		return Summary{}, fmt.Errorf("wfq: cannot summarize zero departures")
	}

	delays := make([]float64, len(departures))
	for i, d := range departures {
		delays[i] = float64(d.StartTime - d.Packet.ArrivalTime)
	}

	var gaps []float64
	for i := 1; i < len(departures); i++ {
		gaps = append(gaps, float64(departures[i].StartTime-departures[i-1].StartTime))
	}

	var s Summary
	s.Count = len(departures)

	median, err := stats.Median(delays)
	if err != nil {
		return Summary{}, fmt.Errorf("wfq: queueing delay median: %w", err)
	}
	s.QueueingDelayMedian = median

	mean, err := stats.Mean(delays)
	if err != nil {
		return Summary{}, fmt.Errorf("wfq: queueing delay mean: %w", err)
	}
	s.QueueingDelayMean = mean

	stddev, err := stats.StandardDeviation(delays)
	if err != nil {
		return Summary{}, fmt.Errorf("wfq: queueing delay stddev: %w", err)
	}
	s.QueueingDelayStdDev = stddev

	if len(gaps) > 0 {
		gapMedian, err := stats.Median(gaps)
		if err != nil {
			return Summary{}, fmt.Errorf("wfq: inter-departure gap median: %w", err)
		}
		s.InterDepartureGapMedian = gapMedian

		gapMean, err := stats.Mean(gaps)
		if err != nil {
			return Summary{}, fmt.Errorf("wfq: inter-departure gap mean: %w", err)
		}
		s.InterDepartureGapMean = gapMean
	}

	return s, nil
}

// String renders the summary as a single human-readable report line.
func (s Summary) String() string {
	return fmt.Sprintf(
		"packets=%d queueing_delay(median=%.3f mean=%.3f stddev=%.3f) inter_departure_gap(median=%.3f mean=%.3f)",
		s.Count,
		s.QueueingDelayMedian, s.QueueingDelayMean, s.QueueingDelayStdDev,
		s.InterDepartureGapMedian, s.InterDepartureGapMean,
	)
}
