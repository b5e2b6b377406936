package importer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	pb "github.com/dmitrijs2005/vaultkeeper/internal/proto"
)

type fakeClient struct {
	token string
	req   *pb.ImportRequest
	err   error
}

func (f *fakeClient) Import(ctx context.Context, in *pb.ImportRequest, opts ...grpc.CallOption) (*pb.ImportResponse, error) {
	md, _ := metadata.FromOutgoingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		f.token = v[0]
	}
	f.req = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ImportResponse{}, nil
}

func writeBundle(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const bundleJSON = `{
	"folders": [{"id": "f-1", "name": "2.enc|a"}],
	"ciphers": [{"encryptedFor": "u1", "type": 2, "name": "2.enc|n", "secureNote": {"type": 0}}],
	"folderRelationships": [{"key": 0, "value": 0}]
}`

func TestRun_Success(t *testing.T) {
	c := &fakeClient{}
	cfg := &Config{BundlePath: writeBundle(t, bundleJSON), AccessToken: "tok", Timeout: time.Second}
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, c, &out))

	assert.Equal(t, "tok", c.token)
	require.NotNil(t, c.req)
	require.Len(t, c.req.Ciphers, 1)
	assert.Equal(t, int32(2), c.req.Ciphers[0].GetType())
	assert.JSONEq(t, `{"type": 0}`, string(c.req.Ciphers[0].GetSecureNote()))
	assert.Nil(t, c.req.Ciphers[0].GetLogin())
	require.Len(t, c.req.FolderRelationships, 1)
	assert.Equal(t, uint32(0), c.req.FolderRelationships[0].GetKey())
	assert.Equal(t, "imported 1 folders and 1 ciphers\n", out.String())
}

func TestRun_ServerRejects(t *testing.T) {
	c := &fakeClient{err: status.Error(codes.InvalidArgument, "bad request: cipher encrypted for wrong user")}
	cfg := &Config{BundlePath: writeBundle(t, bundleJSON), AccessToken: "tok", Timeout: time.Second}

	err := Run(context.Background(), cfg, c, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidArgument")
	assert.Contains(t, err.Error(), "wrong user")
}

func TestRun_BadFile(t *testing.T) {
	c := &fakeClient{}

	err := Run(context.Background(), &Config{BundlePath: writeBundle(t, "{not json"), Timeout: time.Second}, c, &bytes.Buffer{})
	require.Error(t, err)
	assert.Nil(t, c.req)

	err = Run(context.Background(), &Config{BundlePath: filepath.Join(t.TempDir(), "absent.json"), Timeout: time.Second}, c, &bytes.Buffer{})
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]string{"-a", "vault:6000", "-f", "b.json", "-t", "tok", "-w", "5", "-z", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, &Config{ServerEndpointAddr: "vault:6000", BundlePath: "b.json", AccessToken: "tok", Timeout: 5 * time.Second}, cfg)

	_, err = LoadConfig([]string{"-a", "vault:6000"})
	require.Error(t, err, "bundle file is mandatory")
}

func TestGetToken(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) { return []byte(" tok \n"), nil }
	var out bytes.Buffer
	tok, err := GetToken(&out)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.Contains(t, out.String(), "Enter access token")

	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = GetToken(&bytes.Buffer{})
	require.Error(t, err)
}

type nopCloser struct{ closed bool }

func (c *nopCloser) Close() error {
	c.closed = true
	return nil
}

func stubClient(t *testing.T, c pb.ImportServiceClient) *nopCloser {
	t.Helper()
	orig := newClient
	t.Cleanup(func() { newClient = orig })

	closer := &nopCloser{}
	newClient = func(string) (pb.ImportServiceClient, io.Closer, error) {
		return c, closer, nil
	}
	return closer
}

func TestExecute_ExitStatus(t *testing.T) {
	bundle := writeBundle(t, bundleJSON)

	t.Run("success", func(t *testing.T) {
		closer := stubClient(t, &fakeClient{})
		var out, errOut bytes.Buffer

		code := Execute(context.Background(), []string{"-f", bundle, "-t", "tok"}, &out, &errOut)
		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), "imported 1 folders")
		assert.True(t, closer.closed)
	})

	t.Run("rejected import", func(t *testing.T) {
		stubClient(t, &fakeClient{err: status.Error(codes.InvalidArgument, "bad request")})
		var errOut bytes.Buffer

		code := Execute(context.Background(), []string{"-f", bundle, "-t", "tok"}, &bytes.Buffer{}, &errOut)
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut.String(), "InvalidArgument")
	})

	t.Run("server error", func(t *testing.T) {
		stubClient(t, &fakeClient{err: status.Error(codes.Internal, "internal error")})

		code := Execute(context.Background(), []string{"-f", bundle, "-t", "tok"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Equal(t, 1, code)
	})

	t.Run("missing bundle flag", func(t *testing.T) {
		c := &fakeClient{}
		stubClient(t, c)

		code := Execute(context.Background(), []string{"-t", "tok"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Equal(t, 2, code)
		assert.Nil(t, c.req)
	})
}
