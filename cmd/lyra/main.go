package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lyrapkg/lyra/internal/client/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "lyra:", err)
		os.Exit(1)
	}
}
