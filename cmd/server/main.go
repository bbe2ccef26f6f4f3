package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deepfabric/abacus/pkg/api"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/fagongzi/log"
	"github.com/fagongzi/util/version"
)

var (
	addr        = flag.String("addr", "127.0.0.1:8081", "tcp terminal address, empty disables")
	addrHTTP    = flag.String("addr-http", "127.0.0.1:8082", "http api address, empty disables")
	addrPPROF   = flag.String("addr-pprof", "", "pprof")
	grammarName = flag.String("grammar", grammar.IntegerName, "grammar of tcp terminals: integer, signed or decimal")
	strict      = flag.Bool("strict", true, "out of place ')' and '=' cancel the expression")
	cancelKeys  = flag.Bool("cancel-keys", false, "ESC and backspace cancel the expression")
	digits      = flag.Int("fraction-digits", 6, "fractional digits of decimal results")
	sessionTTL  = flag.Int("session-ttl", 0, "seconds an idle http session is kept, 0 keeps forever")
)

var (
	stopping = false
)

func main() {
	flag.Parse()
	version.PrintVersion()

	log.InitLog()

	if *addrPPROF != "" {
		go func() {
			log.Errorf("start pprof failed, errors:\n%+v",
				http.ListenAndServe(*addrPPROF, nil))
		}()
	}

	cfg, err := grammar.ByName(*grammarName,
		grammar.WithStrict(*strict),
		grammar.WithCancelKeys(*cancelKeys),
		grammar.WithFractionDigits(*digits))
	if err != nil {
		log.Fatalf("load grammar failed with %+v", err)
	}

	apiServer, err := api.NewServer(api.WithTCPAddr(*addr),
		api.WithHTTPAddr(*addrHTTP),
		api.WithGrammar(cfg),
		api.WithSessionTTL(time.Second*time.Duration(*sessionTTL)))
	if err != nil {
		log.Fatalf("create api server failed with %+v", err)
	}

	err = apiServer.Start()
	if err != nil {
		log.Fatalf("start api server failed with %+v", err)
	}

	sc := make(chan os.Signal, 2)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	for {
		sig := <-sc

		if !stopping {
			stopping = true
			go func() {
				apiServer.Stop()
				log.Infof("exit: signal=<%d>.", sig)
				switch sig {
				case syscall.SIGTERM:
					log.Infof("exit: bye :-).")
					os.Exit(0)
				default:
					log.Infof("exit: bye :-(.")
					os.Exit(1)
				}
			}()
			continue
		}

		log.Infof("exit: bye :-).")
		os.Exit(0)
	}
}
