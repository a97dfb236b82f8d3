package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	switch selected {
	case app.BinWorker:
		return []fx.Option{
			app.EngineModule(),
			app.WorkerModule(),
		}
	case app.BinOps:
		return []fx.Option{
			app.EngineModule(),
			app.OpsModule(),
		}
	default:
		return []fx.Option{
			app.EngineModule(),
			app.WorkerModule(),
			app.OpsModule(),
		}
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: worker|ops (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
