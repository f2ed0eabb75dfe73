package main

import (
	"idguard.io/infrastructure"
	"idguard.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
