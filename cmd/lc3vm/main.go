// Command lc3vm runs a single LC-3 object image to completion.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sarchlab/lc3vm/host"
	"github.com/sarchlab/lc3vm/vm"
)

// exitInterrupted is the documented exit code for a host-level interrupt
// (SIGINT), matching the reference implementation's use of -2 as an
// unsigned byte.
const exitInterrupted = 254

var verbose = flag.Bool("v", false, "trace each fetched instruction")

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: lc3vm <path-to-object-file>\n")
		os.Exit(1)
	}
	path := flag.Arg(0)

	fp, err := os.Open(path)
	if err != nil {
		log.Fatalf("lc3vm: %v", err)
	}
	defer fp.Close()

	restore, err := host.EnableRawMode(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("lc3vm: %v", err)
	}
	defer restore()

	term := host.NewTerminal(os.Stdin, os.Stdout)
	opts := []vm.Option{vm.WithHost(term)}
	if *verbose {
		opts = append(opts, vm.WithTrace(func(pc, word uint16, inst vm.Instruction) {
			fmt.Fprintf(os.Stderr, "lc3vm: pc=0x%04X word=0x%04X op=%d\n", pc, word, inst.Op)
		}))
	}
	machine := vm.New(opts...)

	if err := machine.LoadImage(fp); err != nil {
		restore()
		log.Fatalf("lc3vm: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT)
	go func() {
		<-sig
		cancel()
	}()

	if err := machine.Run(ctx); err != nil {
		restore()
		if errors.Is(err, vm.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "lc3vm: interrupted")
			os.Exit(exitInterrupted)
		}
		log.Fatalf("lc3vm: %v", err)
	}
	restore()
	os.Exit(0)
}
