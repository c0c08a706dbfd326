// Command p256k1gen drives the batch public-key pipeline for bulk address
// generation and throughput measurement.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	p256k1 "p256k1engine.mleku.dev"
)

func main() {
	window := flag.Uint("window", 18, "big-mult table window width, 4-62")
	batch := flag.Int("batch", 256, "keys per batch")
	total := flag.Int("count", 100000, "total keys to generate")
	compressed := flag.Bool("compressed", true, "emit compressed (33-byte) public keys")

	flag.Parse()

	ctx, err := p256k1.NewBigMultContext(*window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "p256k1gen: building table: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Destroy()

	scratch, err := p256k1.NewScratch(*batch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "p256k1gen: allocating scratch: %v\n", err)
		os.Exit(1)
	}
	defer scratch.Destroy()

	start := time.Now()
	produced := 0
	valid := 0

	for produced < *total {
		n := *batch
		if remaining := *total - produced; remaining < n {
			n = remaining
		}

		seckeys := make([][]byte, n)
		for i := range seckeys {
			sk := make([]byte, 32)
			if _, err := rand.Read(sk); err != nil {
				fmt.Fprintf(os.Stderr, "p256k1gen: reading random bytes: %v\n", err)
				os.Exit(1)
			}
			seckeys[i] = sk
		}

		out, err := ctx.PubkeyCreateSerializedBatch(scratch, seckeys, *compressed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "p256k1gen: batch derivation: %v\n", err)
			os.Exit(1)
		}

		for _, pk := range out {
			if pk != nil {
				valid++
			}
		}

		produced += n
	}

	elapsed := time.Since(start)
	rate := float64(produced) / elapsed.Seconds()

	fmt.Fprintf(os.Stderr, "p256k1gen: generated %d keys (%d valid) in %s (%.0f keys/sec, window=%d, batch=%d)\n",
		produced, valid, elapsed, rate, *window, *batch)
}
