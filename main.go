package main

import "github/chapool/cosmos-wallet/cmd"

func main() {
	cmd.Execute()
}
