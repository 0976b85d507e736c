package wfq

import (
	"testing"
)

func mkPacket(finish float64, appearance int, arrival int64, seq int) *Packet {
	return &Packet{
		VirtualFinish: finish,
		flow:          &FlowState{AppearanceOrder: appearance},
		ArrivalTime:   arrival,
		Seq:           seq,
	}
}

func TestReadyQueueOrdersByFinishTime(t *testing.T) {
	var rq ReadyQueue
	rq.Insert(mkPacket(10, 0, 0, 0))
	rq.Insert(mkPacket(5, 1, 0, 1))
	rq.Insert(mkPacket(7, 2, 0, 2))

	var got []float64
	for rq.Size() > 0 {
		got = append(got, rq.PopMin().VirtualFinish)
	}
	want := []float64{5, 7, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got = %v, want %v", got, want)
		}
	}
}

func TestReadyQueueTieBreakOnAppearanceOrder(t *testing.T) {
	var rq ReadyQueue
	// both finish at 4.0, within epsilon of each other
	rq.Insert(mkPacket(4.0, 1, 0, 1))
	rq.Insert(mkPacket(4.0, 0, 0, 0))

	first := rq.PopMin()
	if first.flow.AppearanceOrder != 0 {
		t.Fatalf("expected the earlier-appearing flow to win, got appearance=%d", first.flow.AppearanceOrder)
	}
}

func TestReadyQueueTieBreakWithinEpsilonIsEquality(t *testing.T) {
	var rq ReadyQueue
	rq.Insert(mkPacket(4.0+5e-10, 1, 0, 1))
	rq.Insert(mkPacket(4.0, 0, 0, 0))

	first := rq.PopMin()
	if first.flow.AppearanceOrder != 0 {
		t.Fatalf("expected appearance-order tie-break within epsilon, got appearance=%d", first.flow.AppearanceOrder)
	}
}

func TestReadyQueueTieBreakOnArrivalThenSeq(t *testing.T) {
	var rq ReadyQueue
	// same finish time, same flow appearance order: arrival time decides
	rq.Insert(mkPacket(1.0, 0, 5, 9))
	rq.Insert(mkPacket(1.0, 0, 2, 1))

	first := rq.PopMin()
	if first.ArrivalTime != 2 {
		t.Fatalf("expected earlier arrival time to win, got arrival=%d", first.ArrivalTime)
	}

	// now same arrival time too: sequence number decides
	var rq2 ReadyQueue
	rq2.Insert(mkPacket(1.0, 0, 2, 9))
	rq2.Insert(mkPacket(1.0, 0, 2, 1))
	first2 := rq2.PopMin()
	if first2.Seq != 1 {
		t.Fatalf("expected earlier sequence number to win, got seq=%d", first2.Seq)
	}
}

func TestReadyQueueSizeAndPeek(t *testing.T) {
	var rq ReadyQueue
	if rq.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", rq.Size())
	}
	p := mkPacket(1, 0, 0, 0)
	rq.Insert(p)
	if rq.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", rq.Size())
	}
	if rq.Peek() != p {
		t.Fatal("Peek() did not return the inserted packet")
	}
	if rq.Size() != 1 {
		t.Fatal("Peek() must not remove the packet")
	}
}

func TestReadyQueueCheckInvariant(t *testing.T) {
	var rq ReadyQueue
	rq.Insert(mkPacket(3, 0, 0, 0))
	rq.Insert(mkPacket(1, 1, 0, 1))
	rq.Insert(mkPacket(2, 2, 0, 2))

	logger := &recordingLogger{}
	if !rq.checkInvariant(logger) {
		t.Fatal("expected a heap built via Insert to satisfy the invariant")
	}
	if len(logger.warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", logger.warnings)
	}
}

// recordingLogger is a minimal [Logger] that records Warnf calls, used to
// assert on [ReadyQueue.checkInvariant] without pulling in apex/log.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string)          {}
func (l *recordingLogger) Debugf(string, ...any) {}
func (l *recordingLogger) Info(string)           {}
func (l *recordingLogger) Infof(string, ...any)  {}
func (l *recordingLogger) Warn(message string)   { l.warnings = append(l.warnings, message) }
func (l *recordingLogger) Warnf(format string, v ...any) {
	l.warnings = append(l.warnings, format)
}
