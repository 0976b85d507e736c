// Command wfqsim runs the WFQ packet scheduler simulator over a stream of
// packet arrival records read from stdin (or a file named with -input),
// and writes each packet's original input line to stdout (or a file
// named with -output), prefixed with its transmission-start time.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/bassosimone/wfqsim"
)

func main() {
	input := flag.String("input", "-", "input file ('-' for stdin)")
	output := flag.String("output", "-", "output file ('-' for stdout)")
	maxFlows := flag.Int("max-flows", wfq.DefaultMaxFlows, "flow-table capacity")
	verbose := flag.Bool("verbose", false, "emit per-departure debug lines")
	debugHeap := flag.Bool("debug-heap", false, "run the ready-queue invariant check before exit")
	summary := flag.Bool("summary", false, "print queueing-delay and inter-departure-gap statistics to stderr")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	in, err := openInput(*input)
	if err != nil {
		log.WithError(err).Fatal("wfqsim: opening input")
	}
	defer in.Close()

	out, err := openOutput(*output)
	if err != nil {
		log.WithError(err).Fatal("wfqsim: opening output")
	}
	defer out.Close()

	if err := run(in, out, *maxFlows, *debugHeap, *summary); err != nil {
		log.WithError(err).Error("wfqsim: fatal error")
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File, maxFlows int, debugHeap bool, printSummary bool) error {
	arrivals, err := wfq.ReadArrivals(in)
	if err != nil {
		return fmt.Errorf("reading arrivals: %w", err)
	}

	writer := bufio.NewWriter(out)
	defer writer.Flush()

	sched := wfq.NewScheduler(maxFlows, log.Log)

	var departures []wfq.Departure
	emit := func(d wfq.Departure) {
		fmt.Fprintf(writer, "%d: %s\n", d.StartTime, d.Packet.Line)
		if printSummary {
			departures = append(departures, d)
		}
	}

	if err := sched.Run(arrivals, emit); err != nil {
		return err
	}

	if debugHeap && !sched.CheckReadyQueueInvariant() {
		log.Warn("wfqsim: ready-queue invariant violated and repaired")
	}

	if printSummary {
		if err := writer.Flush(); err != nil {
			return fmt.Errorf("flushing output: %w", err)
		}
		summary, err := wfq.Summarize(departures)
		if err != nil {
			log.WithError(err).Warn("wfqsim: cannot compute summary")
		} else {
			fmt.Fprintln(os.Stderr, summary.String())
		}
	}

	return nil
}

func openInput(name string) (*os.File, error) {
	if name == "-" {
		return os.Stdin, nil
	}
	return os.Open(name)
}

func openOutput(name string) (*os.File, error) {
	if name == "-" {
		return os.Stdout, nil
	}
	return os.Create(name)
}
