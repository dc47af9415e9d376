package main

import (
	"github.com/alatiera/buildfarm/cmd/buildfarm/internal"
)

func main() {
	internal.Execute()
}
