package main

import (
	"github.com/warblerhq/warbler/internal/server"
)

func main() {
	s := server.New()
	s.RegisterRoutes()
	s.Start(s.Cfg.GetAddr())
}
