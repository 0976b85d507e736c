package wfq

//
// Ready priority queue
//

import "container/heap"

// tieBreakEpsilon is the tolerance used when comparing virtual finish
// times for equality. Repeated floating-point division and addition
// across a long run accumulates drift that would otherwise make ties
// break nondeterministically.
const tieBreakEpsilon = 1e-9

// packetLess implements the ready-queue ordering: lexicographic on
// (virtual finish time within tieBreakEpsilon, flow appearance order,
// packet arrival time, packet input sequence number).
func packetLess(a, b *Packet) bool {
	diff := a.VirtualFinish - b.VirtualFinish
	if diff < -tieBreakEpsilon {
		return true
	}
	if diff > tieBreakEpsilon {
		return false
	}
	if a.flow.AppearanceOrder != b.flow.AppearanceOrder {
		return a.flow.AppearanceOrder < b.flow.AppearanceOrder
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Seq < b.Seq
}

// packetHeap implements container/heap.Interface over a slice of
// pending packets, ordered by [packetLess]. The slice holds pointers to
// the domain type directly; only Push and Pop pass them through `any`, as
// container/heap requires.
type packetHeap []*Packet

func (h packetHeap) Len() int            { return len(h) }
func (h packetHeap) Less(i, j int) bool  { return packetLess(h[i], h[j]) }
func (h packetHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *packetHeap) Push(x any)         { *h = append(*h, x.(*Packet)) }
func (h *packetHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// ReadyQueue is a min-ordered container of enqueued packets. The zero
// value is ready to use.
type ReadyQueue struct {
	h packetHeap
}

// Insert adds packet to the queue. O(log n).
func (rq *ReadyQueue) Insert(p *Packet) {
	heap.Push(&rq.h, p)
}

// PopMin removes and returns the packet with the smallest
// (virtual finish time, flow appearance order, arrival time, sequence)
// key. O(log n). It panics if the queue is empty; callers must check
// [ReadyQueue.Size] first.
func (rq *ReadyQueue) PopMin() *Packet {
	return heap.Pop(&rq.h).(*Packet)
}

// Peek returns the packet that would be returned by PopMin without
// removing it. It panics if the queue is empty.
func (rq *ReadyQueue) Peek() *Packet {
	return rq.h[0]
}

// Size returns the number of packets currently queued.
func (rq *ReadyQueue) Size() int {
	return len(rq.h)
}

// checkInvariant walks the heap verifying the min-heap property holds
// under [packetLess] and repairs it via heap.Init if a violation is
// found. It is a diagnostic, never called from the scheduling hot path,
// only from tests and the `-debug-heap` CLI flag: a correctly
// implemented container/heap usage cannot actually drift, so this exists
// to make the invariant visible rather than to paper over a bug.
func (rq *ReadyQueue) checkInvariant(logger Logger) bool {
	valid := true
	for i := range rq.h {
		l, r := 2*i+1, 2*i+2
		if l < len(rq.h) && packetLess(rq.h[l], rq.h[i]) {
			logger.Warnf("wfq: heap invariant violated at parent=%d left=%d", i, l)
			valid = false
		}
		if r < len(rq.h) && packetLess(rq.h[r], rq.h[i]) {
			logger.Warnf("wfq: heap invariant violated at parent=%d right=%d", i, r)
			valid = false
		}
	}
	if !valid {
		heap.Init(&rq.h)
	}
	return valid
}
