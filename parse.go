package wfq

//
// Input line parsing
//

import (
	"strconv"
	"strings"
)

// ParseLine parses one input line of the form:
//
//	<arrival_time> <src_ip> <src_port> <dst_ip> <dst_port> <length_bytes> [<weight>]
//
// It returns ok=false for blank lines and malformed lines (fewer than six
// tokens, or unparseable numbers); callers should skip these silently
// rather than treat them as fatal, so ParseLine never returns an error for
// them. seq is stamped onto the returned [Packet] verbatim.
func ParseLine(line string, seq int) (p *Packet, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, false
	}
	fields := strings.Fields(trimmed)
	if len(fields) < 6 {
		return nil, false
	}

	arrival, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || arrival < 0 {
		return nil, false
	}
	srcIP := fields[1]
	srcPort, err := parsePort(fields[2])
	if err != nil {
		return nil, false
	}
	dstIP := fields[3]
	dstPort, err := parsePort(fields[4])
	if err != nil {
		return nil, false
	}
	length, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil || length <= 0 {
		return nil, false
	}

	var weight float64
	if len(fields) >= 7 {
		w, err := strconv.ParseFloat(fields[6], 64)
		if err != nil || w <= 0 {
			return nil, false
		}
		weight = w
	}

	p = &Packet{
		ArrivalTime: arrival,
		Key: FlowKey{
			SrcIP:   srcIP,
			SrcPort: srcPort,
			DstIP:   dstIP,
			DstPort: dstPort,
		},
		Length: length,
		Weight: weight,
		Line:   trimmed,
		Seq:    seq,
	}
	return p, true
}

// parsePort parses a decimal port number in [0, 65535].
func parsePort(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v > 65535 {
		return 0, strconv.ErrRange
	}
	return uint16(v), nil
}
