package wfq

//
// Pending-arrivals source
//

import (
	"bufio"
	"io"
	"math"
	"sort"
)

// ArrivalSource produces packet arrivals in non-decreasing
// (arrival_time, input sequence number) order. The zero value is not
// ready to use; construct with [NewArrivalSource] or [ReadArrivals].
type ArrivalSource struct {
	// pending holds the not-yet-popped arrivals, stabilised in order.
	pending []*Packet

	// cursor is the index of the next arrival to pop.
	cursor int
}

// NewArrivalSource builds an [ArrivalSource] from already-parsed packets,
// stabilising them into (arrival_time ascending, sequence ascending)
// order. It does not re-assign Seq; callers are expected to have already
// stamped packets in input order.
func NewArrivalSource(packets []*Packet) *ArrivalSource {
	ordered := make([]*Packet, len(packets))
	copy(ordered, packets)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].ArrivalTime != ordered[j].ArrivalTime {
			return ordered[i].ArrivalTime < ordered[j].ArrivalTime
		}
		return ordered[i].Seq < ordered[j].Seq
	})
	return &ArrivalSource{pending: ordered}
}

// ReadArrivals reads r line by line, parsing each non-empty line with
// [ParseLine] and silently skipping malformed ones, then returns an
// [ArrivalSource] over the result. Sequence numbers are assigned in the
// order lines are read, but skipped lines are not counted: only lines
// that parse successfully receive a Seq, assigned in increasing order of
// successful parses.
func ReadArrivals(r io.Reader) (*ArrivalSource, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var packets []*Packet
	seq := 0
	for scanner.Scan() {
		p, ok := ParseLine(scanner.Text(), seq)
		if !ok {
			continue
		}
		packets = append(packets, p)
		seq++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewArrivalSource(packets), nil
}

// PeekNextArrivalTime returns the arrival time of the next pending
// arrival, or +Inf if the source is exhausted.
func (as *ArrivalSource) PeekNextArrivalTime() float64 {
	if as.cursor >= len(as.pending) {
		return math.Inf(1)
	}
	return float64(as.pending[as.cursor].ArrivalTime)
}

// PopNextArrival removes and returns the next pending arrival. It panics
// if the source is exhausted; callers must check [ArrivalSource.Empty]
// (or compare [ArrivalSource.PeekNextArrivalTime] against +Inf) first.
func (as *ArrivalSource) PopNextArrival() *Packet {
	p := as.pending[as.cursor]
	as.pending[as.cursor] = nil // drop the reference promptly
	as.cursor++
	return p
}

// Empty reports whether every arrival has been popped.
func (as *ArrivalSource) Empty() bool {
	return as.cursor >= len(as.pending)
}

// Len returns the number of arrivals not yet popped.
func (as *ArrivalSource) Len() int {
	return len(as.pending) - as.cursor
}
