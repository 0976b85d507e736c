// Package wfq implements a Weighted Fair Queueing (WFQ) packet scheduler
// simulator driving a single work-conserving output link.
//
// The simulator reads packet arrival records (see [ParseLine]) describing
// traffic on multiple flows, identified by a 4-tuple (see [FlowKey]), and
// runs a discrete-event simulation (see [Scheduler]) that interleaves real
// time and GPS virtual time to decide, for every packet, the real time at
// which its transmission would begin under WFQ service.
//
// The core is entirely synchronous: there are no goroutines, no channels,
// and no suspension points in the scheduling loop itself. All mutable state
// (the flow table, the ready queue, and the two clocks) is owned by a
// single [Scheduler] value, which makes the simulator trivial to run many
// times over in the same process.
//
// Building blocks:
//
//   - [FlowTable] maps a [FlowKey] to its [FlowState] (weight, last finish
//     tag, backlog count, appearance order);
//
//   - [ArrivalSource] produces packet arrivals in non-decreasing arrival-time
//     order;
//
//   - [ReadyQueue] holds packets that have arrived but not yet been
//     transmitted, ordered by virtual finish time with a deterministic
//     tie-break;
//
//   - [VirtualClock] tracks the GPS virtual time and converts real-time
//     intervals to virtual-time intervals depending on the active backlogged
//     weight;
//
//   - [Scheduler] ties the above together into the event loop that emits one
//     [Departure] per input packet.
package wfq
