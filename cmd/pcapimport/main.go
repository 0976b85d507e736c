// Command pcapimport converts a pcap capture into the scheduler's native
// input line format:
//
//	<arrival_time> <src_ip> <src_port> <dst_ip> <dst_port> <length_bytes>
//
// arrival_time is the packet's capture timestamp in microseconds relative
// to the first TCP/UDP-over-IPv4 packet in the file, truncated to an
// integer tick. Packets
// that are neither TCP nor UDP over IPv4 are skipped, since they carry no
// 4-tuple to key a flow on.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

func main() {
	input := flag.String("input", "", "pcap file to convert (required)")
	output := flag.String("output", "-", "output file ('-' for stdout)")
	flag.Parse()

	if *input == "" {
		log.Fatal("pcapimport: -input is required")
	}

	in, err := os.Open(*input)
	if err != nil {
		log.WithError(err).Fatal("pcapimport: opening input")
	}
	defer in.Close()

	out := os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			log.WithError(err).Fatal("pcapimport: opening output")
		}
		defer f.Close()
		out = f
	}

	if err := convert(in, out); err != nil {
		log.WithError(err).Fatal("pcapimport: conversion failed")
	}
}

// convert reads pcap records from r and writes one scheduler input line
// per TCP/UDP-over-IPv4 packet to w.
func convert(r *os.File, w *os.File) error {
	src, err := pcapgo.NewReader(r)
	if err != nil {
		return fmt.Errorf("pcapimport: reading pcap header: %w", err)
	}

	writer := bufio.NewWriter(w)
	defer writer.Flush()

	linkType := src.LinkType()
	var firstTimestamp int64
	haveFirst := false

	for {
		data, ci, err := src.ReadPacketData()
		if err != nil {
			break // EOF or truncated capture: stop, keep what we emitted
		}

		line, ok := packetToLine(data, linkType, ci.Timestamp.UnixMicro(), &firstTimestamp, &haveFirst)
		if !ok {
			continue
		}
		fmt.Fprintln(writer, line)
	}
	return writer.Flush()
}

// packetToLine dissects one raw IPv4 frame and, if it carries a TCP or UDP
// 4-tuple, formats it as a scheduler input line. firstTimestamp/haveFirst
// let successive calls compute arrival_time relative to the first packet
// seen, so the simulation always starts at tick 0.
func packetToLine(data []byte, linkType layers.LinkType, tsMicros int64, firstTimestamp *int64, haveFirst *bool) (string, bool) {
	packet := gopacket.NewPacket(data, linkType, gopacket.Lazy)

	ipLayer := packet.Layer(layers.LayerTypeIPv4)
	if ipLayer == nil {
		return "", false
	}
	ip, ok := ipLayer.(*layers.IPv4)
	if !ok {
		return "", false
	}

	var srcPort, dstPort uint16
	switch {
	case packet.Layer(layers.LayerTypeTCP) != nil:
		tcp := packet.Layer(layers.LayerTypeTCP).(*layers.TCP)
		srcPort, dstPort = uint16(tcp.SrcPort), uint16(tcp.DstPort)
	case packet.Layer(layers.LayerTypeUDP) != nil:
		udp := packet.Layer(layers.LayerTypeUDP).(*layers.UDP)
		srcPort, dstPort = uint16(udp.SrcPort), uint16(udp.DstPort)
	default:
		return "", false
	}

	if !*haveFirst {
		*firstTimestamp = tsMicros
		*haveFirst = true
	}
	arrival := tsMicros - *firstTimestamp
	if arrival < 0 {
		arrival = 0
	}

	length := len(ip.Payload)
	if length <= 0 {
		length = len(data)
	}

	return fmt.Sprintf("%d %s %d %s %d %d",
		arrival, ip.SrcIP.String(), srcPort, ip.DstIP.String(), dstPort, length,
	), true
}
