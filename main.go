package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tinyforth/zforth/internal/fileinput"
	"github.com/tinyforth/zforth/internal/logio"
	"github.com/tinyforth/zforth/internal/panicerr"
)

func main() {
	var (
		dictSize  int
		padSize   int
		stackSize int
		trace     bool
		dump      bool
		timeout   time.Duration
	)
	flag.IntVar(&dictSize, "dict-size", DefaultDictSize, "dictionary region size in bytes")
	flag.IntVar(&padSize, "pad-size", DefaultPadSize, "scratch pad region size in bytes")
	flag.IntVar(&stackSize, "stack-size", DefaultStackSize, "data/return stack capacity in bytes")
	flag.BoolVar(&trace, "trace", false, "enable trace logging to stderr")
	flag.BoolVar(&dump, "dump", false, "print a memory dump after execution")
	flag.DurationVar(&timeout, "timeout", 0, "abort evaluation after this long")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	var in fileinput.Input
	if args := flag.Args(); len(args) > 0 {
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				log.Errorf("%v", err)
				return
			}
			defer f.Close()
			in.Queue = append(in.Queue, namedFile{f, name})
		}
	} else {
		in.Queue = append(in.Queue, namedFile{os.Stdin, "<stdin>"})
	}

	src, err := readSource(&in)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	vm := New(
		WithHost(NewStdHost()),
		WithLogf(log.Printf),
		WithTrace(trace),
		WithDictSize(dictSize),
		WithPadSize(padSize),
		WithStackSize(stackSize),
		WithOutput(os.Stdout),
	)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var result Result
	done := make(chan error, 1)
	go func() {
		done <- panicerr.Recover("VM", func() error {
			result = vm.Eval(src)
			return nil
		})
	}()

	select {
	case err := <-done:
		log.ErrorIf(err)
	case <-ctx.Done():
		log.Errorf("%v", ctx.Err())
		return
	}

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		fmt.Fprintf(lw, "% x", vm.Dump())
	}

	if result != OK {
		log.Errorf("%v at %v", result, in.Last.Location)
	}
}

type namedFile struct {
	*os.File
	name string
}

func (nf namedFile) Name() string { return nf.name }

// readSource drains in rune by rune, across however many files were queued,
// concatenating them into one buffer for a single Eval call.
func readSource(in *fileinput.Input) (string, error) {
	var buf []byte
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			return string(buf), nil
		}
		if err != nil {
			return "", err
		}
		buf = append(buf, byte(r))
	}
}
