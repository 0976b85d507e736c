package wfq

//
// Simulation loop
//

import (
	"fmt"
	"math"
)

// Scheduler owns all simulator state (the flow table, the ready queue, and
// the virtual-time clock) and runs the WFQ event loop: at each step it
// picks whichever of the next arrival or the next eligible departure comes
// first in real time, and processes that one event. The zero value is not
// ready to use; construct with [NewScheduler]. A Scheduler is single-use:
// call [Scheduler.Run] once.
type Scheduler struct {
	// flows is the flow table.
	flows *FlowTable

	// ready is the ready priority queue.
	ready ReadyQueue

	// clock is the virtual-time clock (also tracks real time T).
	clock VirtualClock

	// tFree is the real time at which the link will finish the packet
	// currently in service.
	tFree float64

	// logger receives the optional per-departure debug line; never nil.
	logger Logger
}

// NewScheduler creates a [Scheduler] with an empty flow table bounded at
// maxFlows distinct flows (<=0 means [DefaultMaxFlows]) and the given
// logger (use an [internal.NullLogger]-equivalent if you don't want any
// debug output).
func NewScheduler(maxFlows int, logger Logger) *Scheduler {
	return &Scheduler{
		flows:  NewFlowTable(maxFlows),
		logger: logger,
	}
}

// Run drains arrivals and the ready queue until both are exhausted,
// calling emit once per departure in transmission order. The link never
// idles while a packet is ready to send: choosing a departure whenever
// one is eligible, in preference to waiting for the next arrival, is what
// keeps the simulation work-conserving. It returns [ErrFlowTableFull]
// (wrapped) if the flow table capacity is exceeded; this is the only
// failure mode of the core.
func (s *Scheduler) Run(arrivals *ArrivalSource, emit func(Departure)) error {
	for !arrivals.Empty() || s.ready.Size() > 0 {
		tArrival := arrivals.PeekNextArrivalTime()
		tDeparture := s.nextEligibleDepartureTime()

		if tArrival <= tDeparture && !arrivals.Empty() {
			if err := s.processArrival(arrivals.PopNextArrival(), tArrival); err != nil {
				return err
			}
			continue
		}
		emit(s.processDeparture())
	}
	return nil
}

// nextEligibleDepartureTime computes the earliest real time the current
// ready-queue head could begin transmission: max(T, head.ArrivalTime,
// tFree-if-link-busy). It returns +Inf if the ready queue is empty, which
// lets [Scheduler.Run] fall out of a plain time comparison between the
// next arrival and the next departure instead of needing a special case
// for "nothing is queued yet".
func (s *Scheduler) nextEligibleDepartureTime() float64 {
	if s.ready.Size() == 0 {
		return math.Inf(1)
	}
	t := s.clock.T
	if head := s.ready.Peek(); float64(head.ArrivalTime) > t {
		t = float64(head.ArrivalTime)
	}
	if s.tFree > t {
		t = s.tFree
	}
	return t
}

// processArrival handles one packet arriving at real time tArrival.
// AdvanceTo always runs strictly before any backlog or weight mutation
// below, so V advances under the OLD W for the interval preceding this
// event, never the new one.
func (s *Scheduler) processArrival(p *Packet, tArrival float64) error {
	vBefore := s.clock.V
	s.clock.AdvanceTo(tArrival)

	flow, err := s.flows.GetOrCreate(p.Key)
	if err != nil {
		return fmt.Errorf("wfq: admitting packet seq=%d: %w", p.Seq, err)
	}

	if flow.Backlog == 0 {
		s.clock.OnFlowBacklogStart(flow)
	}
	flow.Backlog++

	if p.HasExplicitWeight() && p.Weight != flow.Weight {
		s.clock.OnFlowWeightChange(flow, p.Weight)
		flow.Weight = p.Weight
	}

	start := math.Max(vBefore, flow.LastFinish)
	finish := start + float64(p.Length)/flow.Weight
	flow.LastFinish = finish

	p.flow = flow
	p.VirtualStart = start
	p.VirtualFinish = finish
	s.ready.Insert(p)
	return nil
}

// processDeparture pops and transmits the head of the ready queue. It
// never fails: every WFQ invariant is maintained by construction.
func (s *Scheduler) processDeparture() Departure {
	s.clock.AdvanceTo(s.nextEligibleDepartureTime())

	p := s.ready.PopMin()
	tStart := s.clock.T
	s.tFree = tStart + float64(p.Length)

	flow := p.flow
	flow.Backlog--
	if flow.Backlog == 0 {
		s.clock.OnFlowBacklogEnd(flow)
	}

	s.logger.Debugf(
		"wfq: departure arrival_time=%d weight=%.6f virtual_time=%.6f",
		p.ArrivalTime, flow.Weight, s.clock.V,
	)

	return Departure{StartTime: int64(tStart), Packet: p}
}

// FlowCount returns the number of distinct flows observed so far. Mostly
// useful for tests and diagnostics.
func (s *Scheduler) FlowCount() int {
	return s.flows.Len()
}

// CheckReadyQueueInvariant runs the [ReadyQueue] self-check diagnostic.
// It is never called from Run.
func (s *Scheduler) CheckReadyQueueInvariant() bool {
	return s.ready.checkInvariant(s.logger)
}
