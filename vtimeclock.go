package wfq

//
// Virtual-time clock
//

// VirtualClock tracks the GPS virtual time V, real time T, and the sum of
// weights W of currently backlogged flows, and converts real-time
// intervals into virtual-time intervals at rate 1/W. The zero value is
// ready to use (T=0, V=0, W=0).
type VirtualClock struct {
	// T is the current real time.
	T float64

	// V is the current GPS virtual time.
	V float64

	// W is the sum of weights of currently backlogged flows.
	W float64
}

// AdvanceTo charges the interval [T, target] against the current W and
// then sets T to target:
//
//   - if target <= T, this is a no-op;
//   - if W > 0, V += (target - T) / W;
//   - if W == 0, V is unchanged (no flow is backlogged, so virtual time
//     does not progress).
//
// Mutators ([VirtualClock.OnFlowBacklogStart],
// [VirtualClock.OnFlowBacklogEnd], [VirtualClock.OnFlowWeightChange]) must
// only be called after AdvanceTo has run up to the event's real time, so
// that V accounts for the preceding interval under the OLD weight sum.
func (vc *VirtualClock) AdvanceTo(target float64) {
	if target <= vc.T {
		return
	}
	if vc.W > 0 {
		vc.V += (target - vc.T) / vc.W
	}
	vc.T = target
}

// OnFlowBacklogStart records that flow just transitioned from idle to
// backlogged: W += flow.Weight.
func (vc *VirtualClock) OnFlowBacklogStart(flow *FlowState) {
	vc.W += flow.Weight
}

// OnFlowBacklogEnd records that flow just transitioned from backlogged to
// idle: W -= flow.Weight.
func (vc *VirtualClock) OnFlowBacklogEnd(flow *FlowState) {
	vc.W -= flow.Weight
}

// OnFlowWeightChange records a weight change for flow: W is adjusted by
// -oldWeight + newWeight iff the flow is currently backlogged. The caller
// is expected to update flow.Weight itself after this call, since this
// method needs the OLD weight to compute the delta.
func (vc *VirtualClock) OnFlowWeightChange(flow *FlowState, newWeight float64) {
	if flow.Backlog > 0 {
		vc.W = vc.W - flow.Weight + newWeight
	}
}
