package runner_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/yaklabco/parsekit/pkg/grammar"
	"github.com/yaklabco/parsekit/pkg/runner"
)

func BenchmarkRun(b *testing.B) {
	g, err := grammar.DefaultRegistry.Lookup("int-list")
	if err != nil {
		b.Fatal(err)
	}

	args := make([]string, 1000)
	for i := range args {
		args[i] = strconv.Itoa(i) + " " + strconv.Itoa(-i) + " +" + strconv.Itoa(i*7)
	}
	opts := runner.Options{Inputs: runner.FromArgs(args), Grammar: g}

	b.ResetTimer()
	for range b.N {
		if _, err := runner.Run(context.Background(), opts); err != nil {
			b.Fatal(err)
		}
	}
}
