package main

import (
	"github.com/mercadofake/store/internal/app"
	"github.com/mercadofake/store/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
