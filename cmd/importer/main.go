package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/vaultkeeper/internal/client/importer"
)

func main() {
	os.Exit(importer.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
