package importer

import (
	"context"
	"fmt"
	"io"

	pb "github.com/dmitrijs2005/vaultkeeper/internal/proto"
)

// newClient is a seam for tests; it dials addr and returns the client and
// its connection.
var newClient = func(addr string) (pb.ImportServiceClient, io.Closer, error) {
	conn, err := Dial(addr)
	if err != nil {
		return nil, nil, err
	}
	return pb.NewImportServiceClient(conn), conn, nil
}

// Execute runs the importer command with args and returns the process
// exit status: 0 on success, 1 when the import fails, 2 on usage errors.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if cfg.AccessToken == "" {
		if cfg.AccessToken, err = GetToken(stderr); err != nil {
			fmt.Fprintf(stderr, "read token: %v\n", err)
			return 2
		}
	}

	client, conn, err := newClient(cfg.ServerEndpointAddr)
	if err != nil {
		fmt.Fprintf(stderr, "dial: %v\n", err)
		return 1
	}
	defer conn.Close()

	if err := Run(ctx, cfg, client, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
