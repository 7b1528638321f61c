package main

import (
	"fmt"
	"os"

	"github.com/bizledger/api-server-go/internal/util"
)

func main() {
	secret, err := util.GenerateSecret()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(secret)
}
