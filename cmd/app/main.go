package main

import (
	"context"
	"errors"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Fatal(err)
	}
}
