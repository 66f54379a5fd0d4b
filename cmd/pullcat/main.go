// Copyright (c) 2023 - 2025 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pullcat is a small demo driver for the pull streaming engine: it
// generates a run of integers, chunked and optionally made to fail or be
// interrupted partway through, and prints what the interpreter produced.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/IBM/fp-go-streams/function"
	"github.com/IBM/fp-go-streams/pull"
	"github.com/IBM/fp-go-streams/pull/scope"
	"github.com/IBM/fp-go-streams/result"

	C "github.com/urfave/cli/v3"
)

const (
	keyCount          = "count"
	keyChunkSize      = "chunk-size"
	keyFailAt         = "fail-at"
	keyInterruptAfter = "interrupt-after"
	keyDebugScopes    = "debug-scopes"
)

var errDemoFailure = errors.New("pullcat: synthetic failure reached")

func counter(next, count, chunkSize, failAt int) pull.Pull[int, function.Void] {
	if next > count {
		return pull.Done[int]()
	}
	end := next + chunkSize - 1
	if end > count {
		end = count
	}
	if failAt > 0 && failAt < end {
		end = failAt
	}
	chunk := make([]int, 0, end-next+1)
	for i := next; i <= end; i++ {
		chunk = append(chunk, i)
	}
	emit := pull.Output[int](chunk)
	if failAt > 0 && end == failAt {
		return pull.Then(emit, pull.RaiseError[int, function.Void](errDemoFailure))
	}
	return pull.Then(emit, pull.Suspend(func() pull.Pull[int, function.Void] {
		return counter(end+1, count, chunkSize, failAt)
	}))
}

func run(cmd *C.Command) error {
	count := int(cmd.Int(keyCount))
	chunkSize := int(cmd.Int(keyChunkSize))
	failAt := int(cmd.Int(keyFailAt))
	interruptAfter := int(cmd.Int(keyInterruptAfter))
	debugScopes := cmd.Bool(keyDebugScopes)

	prog := counter(1, count, chunkSize, failAt)
	stream, root := pull.Stream(prog)

	chunksSeen := 0
	ioResult := pull.Compile(stream, root, 0, func(total int, chunk pull.Chunk[int]) (int, error) {
		chunksSeen++
		fmt.Printf("chunk %d: %v\n", chunksSeen, []int(chunk))
		if interruptAfter > 0 && chunksSeen == interruptAfter {
			root.MarkInterrupted(nil)
		}
		return total + len(chunk), nil
	})

	outcome := ioResult()

	if debugScopes {
		fmt.Println("--- scope tree ---")
		fmt.Println(scope.Tree(root))
	}

	total, err := result.Unwrap(outcome)
	if err != nil {
		return fmt.Errorf("pullcat: stream ended with error: %w", err)
	}
	fmt.Printf("done: %d elements across %d chunks\n", total, chunksSeen)
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &C.Command{
		Name:  "pullcat",
		Usage: "demo driver for the pull streaming engine",
		Flags: []C.Flag{
			&C.IntFlag{Name: keyCount, Value: 20, Usage: "number of integers to generate"},
			&C.IntFlag{Name: keyChunkSize, Value: 4, Usage: "elements emitted per chunk"},
			&C.IntFlag{Name: keyFailAt, Value: 0, Usage: "element at which to synthesize a failure, 0 disables"},
			&C.IntFlag{Name: keyInterruptAfter, Value: 0, Usage: "chunk count after which to interrupt the stream's scope, 0 disables"},
			&C.BoolFlag{Name: keyDebugScopes, Value: false, Usage: "print the scope tree after compilation"},
		},
		Action: func(ctx context.Context, cmd *C.Command) error {
			return run(cmd)
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
