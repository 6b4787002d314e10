package main

import "github.com/thermaldot/escpos-raster/cmd/escpos-raster/cmd"

func main() {
	cmd.Execute()
}
