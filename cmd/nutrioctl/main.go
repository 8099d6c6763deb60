package main

import "github.com/dmitrijs2005/nutrio/internal/ctl"

func main() {
	ctl.Execute()
}
