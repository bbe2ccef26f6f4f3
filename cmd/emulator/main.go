package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/deepfabric/abacus/pkg/api"
	"github.com/deepfabric/abacus/pkg/client"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/fagongzi/log"
	"github.com/fagongzi/util/version"
)

var (
	addr        = flag.String("addr", "127.0.0.1:8082", "http api address")
	grammarName = flag.String("grammar", grammar.DecimalName, "grammar of the emulated sessions")
	sessions    = flag.Int("sessions", 4, "concurrent sessions")
	expressions = flag.Int("expressions", 100, "expressions per session")
	chunk       = flag.Int("chunk", 3, "max bytes per input request")
	timeout     = flag.Int("timeout", 30, "request timeout in seconds")
)

func main() {
	flag.Parse()
	version.PrintVersion()

	log.InitLog()

	cli := client.NewClient(*addr, client.WithTimeout(time.Second*time.Duration(*timeout)))

	var wg sync.WaitGroup
	for i := 0; i < *sessions; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			emulate(cli, idx)
		}(i)
	}
	wg.Wait()

	active := true
	ids, err := cli.Sessions(*grammarName, &active)
	if err != nil {
		log.Fatalf("list active sessions failed with %+v", err)
	}
	log.Infof("%d sessions left with an expression in progress", len(ids))
}

func emulate(cli client.Client, idx int) {
	id, err := cli.CreateSession(api.CreateSession{Grammar: *grammarName})
	if err != nil {
		log.Fatalf("create session failed with %+v", err)
	}
	defer cli.DeleteSession(id)

	log.Infof("session %d created", id)
	rnd := rand.New(rand.NewSource(int64(idx) + time.Now().UnixNano()))
	results := 0
	for i := 0; i < *expressions; i++ {
		line := fmt.Sprintf("(%d%c%d)=", rnd.Intn(1000)-500, "+-*/"[rnd.Intn(4)], rnd.Intn(1000))
		for len(line) > 0 {
			n := 1 + rnd.Intn(*chunk)
			if n > len(line) {
				n = len(line)
			}

			view, err := cli.Input(id, []byte(line[:n]))
			if err != nil {
				log.Fatalf("session %d input failed with %+v", id, err)
			}
			for _, r := range view.Results {
				log.Debugf("session %d: %s = %s", id, r.Expression, r.Value)
				results++
			}
			line = line[n:]
		}
	}

	view, err := cli.Session(id)
	if err != nil {
		log.Fatalf("session %d snapshot failed with %+v", id, err)
	}
	log.Infof("session %d: %d results, %d accepted, %d cancelled",
		id, results, view.Accepted, view.Cancelled)
}
