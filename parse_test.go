package wfq

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseLine(t *testing.T) {
	type testcase struct {
		name string
		line string
		seq  int
		want *Packet
		ok   bool
	}

	var testcases = []testcase{{
		name: "well formed line without weight",
		line: "0 1.1.1.1 1 2.2.2.2 2 5",
		seq:  3,
		want: &Packet{
			ArrivalTime: 0,
			Key: FlowKey{
				SrcIP: "1.1.1.1", SrcPort: 1,
				DstIP: "2.2.2.2", DstPort: 2,
			},
			Length: 5,
			Weight: 0,
			Line:   "0 1.1.1.1 1 2.2.2.2 2 5",
			Seq:    3,
		},
		ok: true,
	}, {
		name: "well formed line with weight",
		line: "10 A 1 B 2 100 2.5",
		seq:  0,
		want: &Packet{
			ArrivalTime: 10,
			Key: FlowKey{
				SrcIP: "A", SrcPort: 1,
				DstIP: "B", DstPort: 2,
			},
			Length: 100,
			Weight: 2.5,
			Line:   "10 A 1 B 2 100 2.5",
			Seq:    0,
		},
		ok: true,
	}, {
		name: "blank line is skipped",
		line: "",
		ok:   false,
	}, {
		name: "whitespace-only line is skipped",
		line: "   \t  ",
		ok:   false,
	}, {
		name: "too few tokens is skipped",
		line: "0 A 1 B 2",
		ok:   false,
	}, {
		name: "unparseable arrival time is skipped",
		line: "x A 1 B 2 5",
		ok:   false,
	}, {
		name: "unparseable port is skipped",
		line: "0 A x B 2 5",
		ok:   false,
	}, {
		name: "non-positive length is skipped",
		line: "0 A 1 B 2 0",
		ok:   false,
	}, {
		name: "negative arrival time is skipped",
		line: "-1 A 1 B 2 5",
		ok:   false,
	}, {
		name: "non-positive explicit weight is skipped",
		line: "0 A 1 B 2 5 0",
		ok:   false,
	}, {
		name: "surrounding whitespace is trimmed from Line",
		line: "  0 A 1 B 2 5  ",
		want: &Packet{
			ArrivalTime: 0,
			Key:         FlowKey{SrcIP: "A", SrcPort: 1, DstIP: "B", DstPort: 2},
			Length:      5,
			Line:        "0 A 1 B 2 5",
		},
		ok: true,
	}}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseLine(tc.line, tc.seq)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !tc.ok {
				return
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.IgnoreUnexported(Packet{})); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
