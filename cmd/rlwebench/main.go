// Command rlwebench runs repeated RLWE key exchanges against a chosen
// ring preset, reports agreement and per-keyshare latency, and
// optionally renders a latency chart or prints a transcript digest.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/sha3"

	"rlwekex/internal/telemetry"
	"rlwekex/kex"
	"rlwekex/plot"
)

func usage() {
	fmt.Println(`usage: rlwebench [options]

Flags:
  -iterations <int>    number of generate/respond/parse exchanges (default: 1000)
  -preset     <string> ring preset: medium|high (default: medium)
  -plot       <file>   write an HTML latency chart to this path
  -digest               print a SHAKE-256 digest of each run's wire transcript`)
	os.Exit(1)
}

func main() {
	iterations := flag.Int("iterations", 1000, "number of key-exchange iterations")
	preset := flag.String("preset", "medium", "ring preset: medium|high")
	plotPath := flag.String("plot", "", "write an HTML latency chart to this path")
	digest := flag.Bool("digest", false, "print a SHAKE-256 digest of each run's wire transcript")
	flag.Usage = usage
	flag.Parse()

	level, err := resolvePreset(*preset)
	if err != nil {
		log.Fatalf("rlwebench: %v", err)
	}

	samples := make([]plot.IterationLatency, 0, *iterations)
	agreed := 0
	start := time.Now()

	for i := 0; i < *iterations; i++ {
		iterStart := time.Now()

		privBytes, reqBytes, err := kex.Request(level)
		if err != nil {
			log.Fatalf("rlwebench: Request: %v", err)
		}
		sharedR, respBytes, err := kex.Respond(reqBytes)
		if err != nil {
			log.Fatalf("rlwebench: Respond: %v", err)
		}
		sharedI, err := kex.Finalise(privBytes, respBytes)
		if err != nil {
			log.Fatalf("rlwebench: Finalise: %v", err)
		}

		if bytesEqual(sharedR, sharedI) {
			agreed++
		}

		elapsed := time.Since(iterStart)
		samples = append(samples, plot.IterationLatency{
			Iteration: i,
			Micros:    elapsed.Microseconds(),
		})

		if *digest {
			transcript := append(append([]byte{}, reqBytes...), respBytes...)
			fmt.Println(transcriptDigest(transcript))
		}
	}

	total := time.Since(start)
	perKeyshare := float64(total.Milliseconds()) / float64(*iterations)
	fmt.Printf("%d iterations: %.3fms/keyshare\n", *iterations, perKeyshare)

	stageTotals := telemetry.Global.SnapshotAndReset()
	for _, stage := range []string{"generate", "respond", "parse"} {
		ns, ok := stageTotals[stage]
		if !ok {
			continue
		}
		avgUS := float64(ns) / float64(*iterations) / 1000.0
		fmt.Printf("  %-8s avg %.3fus/iteration\n", stage, avgUS)
	}

	if agreed < *iterations {
		fmt.Fprintf(os.Stderr, "warning: %d/%d runs disagreed\n", *iterations-agreed, *iterations)
	}

	if *plotPath != "" {
		f, err := os.Create(*plotPath)
		if err != nil {
			log.Fatalf("rlwebench: create plot file: %v", err)
		}
		defer f.Close()
		if err := plot.WriteLatencyChart(f, *preset, samples); err != nil {
			log.Fatalf("rlwebench: render plot: %v", err)
		}
	}

	if agreed < *iterations {
		os.Exit(1)
	}
}

func resolvePreset(name string) (kex.Security, error) {
	switch name {
	case "medium":
		return kex.Medium, nil
	case "high":
		return kex.High, nil
	default:
		return kex.Security{}, fmt.Errorf("unknown preset %q: want medium|high", name)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// transcriptDigest hashes a run's concatenated wire bytes with
// SHAKE-256, in the teacher's Fiat-Shamir XOF idiom (PIOP/fs_helpers.go),
// for reproducibility logging across benchmark runs.
func transcriptDigest(transcript []byte) string {
	h := sha3.NewShake256()
	h.Write(transcript)
	out := make([]byte, 32)
	h.Read(out)
	return hex.EncodeToString(out)
}
