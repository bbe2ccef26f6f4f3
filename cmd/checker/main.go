package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/deepfabric/abacus/pkg/core"
	"github.com/deepfabric/abacus/pkg/expr"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/fagongzi/log"
	"github.com/fagongzi/util/version"
)

var (
	grammarName = flag.String("grammar", grammar.SignedIntegerName, "grammar to check: integer or signed")
	count       = flag.Int("count", 100000, "expressions to check")
	max         = flag.Int64("max", 100000, "max operand magnitude")
	noise       = flag.Float64("noise", 0.1, "probability of an ignored byte between grammar bytes")
	seed        = flag.Int64("seed", 0, "random seed, 0 uses the current time")
)

const (
	noiseBytes = "abcxyz \t\r\n#"
	ops        = "+-*/"
)

func main() {
	flag.Parse()
	version.PrintVersion()

	log.InitLog()

	cfg, err := grammar.ByName(*grammarName)
	if err != nil {
		log.Fatalf("load grammar failed with %+v", err)
	}
	if cfg.Domain != grammar.IntegerDomain {
		log.Fatalf("grammar %s is not an integer grammar", cfg.Name)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(*seed))
	log.Infof("check %d expressions of grammar %s with seed %d", *count, cfg.Name, *seed)

	e, err := core.NewEvaluator(cfg)
	if err != nil {
		log.Fatalf("create evaluator failed with %+v", err)
	}
	defer e.Close()

	failed := 0
	for i := 0; i < *count; i++ {
		line := randomExpression(rnd, cfg)
		expect, err := expr.Expected([]byte(line))
		if err != nil {
			log.Fatalf("reference eval %q failed with %+v", line, err)
		}

		input := withNoise(rnd, line)
		e.Write([]byte(input))
		results := e.TakeResults()
		e.Flush()

		if len(results) != 1 || string(results[0].Bytes) != expect {
			failed++
			log.Errorf("%q: expect %q, got %+v", input, expect, results)
		}
	}

	log.Infof("%d checked, %d failed", *count, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func randomExpression(rnd *rand.Rand, cfg grammar.Config) string {
	return fmt.Sprintf("(%s%c%s)=",
		randomOperand(rnd, cfg),
		ops[rnd.Intn(len(ops))],
		randomOperand(rnd, cfg))
}

func randomOperand(rnd *rand.Rand, cfg grammar.Config) string {
	value := rnd.Int63n(*max + 1)
	if cfg.Signed && rnd.Intn(2) == 0 {
		return fmt.Sprintf("-%d", value)
	}
	return fmt.Sprintf("%d", value)
}

func withNoise(rnd *rand.Rand, line string) string {
	if *noise <= 0 {
		return line
	}

	var out []byte
	for i := 0; i < len(line); i++ {
		if rnd.Float64() < *noise {
			out = append(out, noiseBytes[rnd.Intn(len(noiseBytes))])
		}
		out = append(out, line[i])
	}
	return string(out)
}
