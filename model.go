package wfq

//
// Data model
//

// Logger is the logger used by this package. The zero value is not a
// valid [Logger]; use [internal.NullLogger] or an adapter around
// a real logging library (e.g. github.com/apex/log) instead.
type Logger interface {
	// Debugf formats and emits a debug message.
	Debugf(format string, v ...any)

	// Debug emits a debug message.
	Debug(message string)

	// Infof formats and emits an informational message.
	Infof(format string, v ...any)

	// Info emits an informational message.
	Info(message string)

	// Warnf formats and emits a warning message.
	Warnf(format string, v ...any)

	// Warn emits a warning message.
	Warn(message string)
}

// FlowKey is the (src_ip, src_port, dst_ip, dst_port) 4-tuple identifying
// a flow. Two packets belong to the same flow iff their keys are equal
// component-wise, so swapping source and destination yields another flow.
type FlowKey struct {
	// SrcIP is the source IPv4 address in dotted-quad form.
	SrcIP string

	// SrcPort is the source port.
	SrcPort uint16

	// DstIP is the destination IPv4 address in dotted-quad form.
	DstIP string

	// DstPort is the destination port.
	DstPort uint16
}

// FlowState is the per-flow bookkeeping maintained by the [FlowTable].
// A flow is backlogged iff Backlog > 0.
type FlowState struct {
	// Weight is the flow's current WFQ weight, default 1.0.
	Weight float64

	// LastFinish is the virtual finish tag of the most recently enqueued
	// packet of this flow. Monotonically non-decreasing.
	LastFinish float64

	// Backlog is the number of packets of this flow currently sitting in
	// the ready queue or in service.
	Backlog int

	// AppearanceOrder is the zero-based index at which this flow was
	// first observed, assigned strictly increasing in insertion order.
	AppearanceOrder int
}

// defaultFlowWeight is the weight a flow starts with before any packet
// carries an explicit weight override.
const defaultFlowWeight = 1.0

// Packet is an immutable-once-enqueued record describing one arrival.
// Derived fields (flow, VirtualStart, VirtualFinish) are set by the
// scheduler at enqueue time.
type Packet struct {
	// ArrivalTime is the packet's arrival tick, as read from the input.
	ArrivalTime int64

	// Key is the flow this packet belongs to.
	Key FlowKey

	// Length is the packet length in bytes; also its transmission
	// duration in time units, since the link rate is 1 byte/tick.
	Length int64

	// Weight is the OPTIONAL explicit per-packet weight override. A zero
	// value means "no override was present on this line".
	Weight float64

	// Line is the original textual representation, echoed verbatim on
	// output.
	Line string

	// Seq is the zero-based input sequence number, assigned in the order
	// lines were read, monotonically increasing across the whole input.
	Seq int

	// flow is the flow state this packet was charged against. Set once,
	// at enqueue time, by the scheduler.
	flow *FlowState

	// VirtualStart is max(V, flow.LastFinish at arrival), where V is the
	// virtual time read before the clock is advanced to this arrival.
	VirtualStart float64

	// VirtualFinish is VirtualStart + Length/weight-after-update.
	VirtualFinish float64
}

// HasExplicitWeight reports whether the input line for this packet carried
// an explicit weight override.
func (p *Packet) HasExplicitWeight() bool {
	return p.Weight > 0
}

// Departure is one emitted scheduling decision: the real time at which
// transmission of Packet begins.
type Departure struct {
	// StartTime is the real time at which transmission begins.
	StartTime int64

	// Packet is the packet that was selected for transmission.
	Packet *Packet
}
