package main

import (
	"context"
	"os"

	"github.com/lwmacct/251218-go-app-boot/internal/command/root"
)

func main() {
	os.Exit(root.Execute(context.Background(), os.Args, os.Stdout, os.Stderr))
}
