// Command rcbytes-stress drives the concurrent-clone property of
// github.com/kolkov/rcbytes's promotable storage kinds: many goroutines
// racing to Clone the same not-yet-shared handle must converge on a single
// promoted block, with the refcount ending at exactly initial+n and no
// double free.
//
// Usage:
//
//	rcbytes-stress race -n 64 -iters 1000   # hammer the promotion CAS
//	rcbytes-stress slice                    # exercise slice/split arithmetic
//	rcbytes-stress version                  # print module version info
package main

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/kolkov/rcbytes"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "race":
		raceCommand(os.Args[2:])
	case "slice":
		sliceCommand(os.Args[2:])
	case "version", "--version", "-v":
		info := rcbytes.GetInfo()
		fmt.Printf("rcbytes-stress: rcbytes %s (%v)\n", info.Version, info.StorageKinds)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`rcbytes-stress - concurrency harness for github.com/kolkov/rcbytes

USAGE:
    rcbytes-stress <command> [arguments]

COMMANDS:
    race       Race n goroutines cloning one promotable handle, repeated
    slice      Exercise slice/split sharing
    version    Show version information
    help       Show this help message

EXAMPLES:
    rcbytes-stress race -n 64 -iters 1000
    rcbytes-stress slice
`)
}

func raceCommand(args []string) {
	n, iters := 32, 1000
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-n":
			i++
			n = mustAtoi(args, i)
		case "-iters":
			i++
			iters = mustAtoi(args, i)
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", args[i])
			os.Exit(1)
		}
	}

	for iter := 0; iter < iters; iter++ {
		h := rcbytes.FromVec([]byte("racing handle payload"))
		clones := make([]rcbytes.Handle, n)

		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			i := i
			go func() {
				defer wg.Done()
				clones[i] = h.Clone()
			}()
		}
		wg.Wait()

		for i := range clones {
			if clones[i].IsUnique() {
				fmt.Fprintf(os.Stderr, "iteration %d: clone %d unexpectedly unique\n", iter, i)
				os.Exit(1)
			}
			clones[i].Drop()
		}
		if !h.IsUnique() {
			fmt.Fprintf(os.Stderr, "iteration %d: original not unique after every clone dropped\n", iter)
			os.Exit(1)
		}
		h.Drop()
	}

	fmt.Printf("ok: %d iterations, %d racing clones each, no double free observed\n", iters, n)
}

func sliceCommand(_ []string) {
	h := rcbytes.FromString("Hello world")
	a := h.Slice(0, 5)
	b := h.SplitTo(6)

	fmt.Printf("a = %q\n", a.String())
	fmt.Printf("b = %q\n", b.String())
	fmt.Printf("h (after SplitTo) = %q\n", h.String())
}

func mustAtoi(args []string, i int) int {
	if i >= len(args) {
		fmt.Fprintln(os.Stderr, "missing value for flag")
		os.Exit(1)
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid integer %q: %v\n", args[i], err)
		os.Exit(1)
	}
	return v
}
