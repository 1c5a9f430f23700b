// main is the entrypoint for the ciphermetrics CLI.
package main

import (
	"fmt"
	"os"

	"github.com/masterputra169/cryptography-website-sub002/cmd"
	"github.com/masterputra169/cryptography-website-sub002/internal/recstore"
)

func main() {
	defer recstore.CloseStores()

	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
