package wfq

//
// Flow table
//

import "fmt"

// DefaultMaxFlows is the default flow-table capacity. It is large enough
// to hold every flow a reasonably sized trace will ever introduce without
// forcing callers to size the table themselves.
const DefaultMaxFlows = 1 << 16

// ErrFlowTableFull indicates the flow table has reached its configured
// capacity and cannot admit a new distinct flow.
var ErrFlowTableFull = fmt.Errorf("wfq: flow table full")

// FlowTable maps a [FlowKey] to its [FlowState]. The zero value is not
// ready to use; construct with [NewFlowTable]. There is no eviction: once
// a flow is seen, its state persists until the [FlowTable] (and the
// enclosing [Scheduler]) is discarded.
type FlowTable struct {
	// maxFlows is the capacity limit. Exceeding it makes GetOrCreate
	// return [ErrFlowTableFull].
	maxFlows int

	// flows holds the per-key state.
	flows map[FlowKey]*FlowState

	// nextAppearance is the next unused appearance order, assigned
	// strictly increasing in order of first insertion.
	nextAppearance int
}

// NewFlowTable creates an empty [FlowTable] with the given capacity. A
// maxFlows <= 0 means "use [DefaultMaxFlows]".
func NewFlowTable(maxFlows int) *FlowTable {
	if maxFlows <= 0 {
		maxFlows = DefaultMaxFlows
	}
	return &FlowTable{
		maxFlows:       maxFlows,
		flows:          make(map[FlowKey]*FlowState),
		nextAppearance: 0,
	}
}

// GetOrCreate returns the [FlowState] for key, allocating one with the
// default weight (1.0), zero last-finish, zero backlog, and the next
// unused appearance order if key has not been seen before. It returns
// [ErrFlowTableFull] rather than allocating past the configured capacity.
func (ft *FlowTable) GetOrCreate(key FlowKey) (*FlowState, error) {
	if fs, found := ft.flows[key]; found {
		return fs, nil
	}
	if len(ft.flows) >= ft.maxFlows {
		return nil, ErrFlowTableFull
	}
	fs := &FlowState{
		Weight:          defaultFlowWeight,
		LastFinish:      0,
		Backlog:         0,
		AppearanceOrder: ft.nextAppearance,
	}
	ft.nextAppearance++
	ft.flows[key] = fs
	return fs, nil
}

// Len returns the number of distinct flows observed so far.
func (ft *FlowTable) Len() int {
	return len(ft.flows)
}
