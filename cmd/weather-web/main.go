// Command weather-web is the browser build of the weather client. Compiled to wasm it
// runs the page; natively it generates the static site or serves it for development.
package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"weather-client/ui"
)

func main() {
	app.Route("/", func() app.Composer { return &ui.Root{} })
	app.RunWhenOnBrowser()

	serve()
}
