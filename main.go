package main

import "country-currency-api/cmd"

func main() {
	cmd.Execute()
}
