package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/aldisptr/backoffice-api/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	switch selected {
	case "auth":
		return []fx.Option{
			app.AuthModule(),
		}
	case "admin", "users":
		return []fx.Option{
			app.DirectoryModule(),
			app.UsersModule(),
		}
	default:
		return []fx.Option{
			app.AuthModule(),
			app.DirectoryModule(),
			app.UsersModule(),
		}
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: auth|admin (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
