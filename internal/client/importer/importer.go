package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	pb "github.com/dmitrijs2005/vaultkeeper/internal/proto"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Dial opens a plaintext client connection to addr.
func Dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// ReadBundle decodes the bundle stored at path.
func ReadBundle(path string) (*models.ImportRequest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	req := &models.ImportRequest{}
	if err := json.Unmarshal(b, req); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return req, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// Run submits the bundle named by cfg and reports the outcome on w.
func Run(ctx context.Context, cfg *Config, client pb.ImportServiceClient, w io.Writer) error {
	req, err := ReadBundle(cfg.BundlePath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if _, err := client.Import(withAccessToken(ctx, cfg.AccessToken), requestToProto(req)); err != nil {
		st := status.Convert(err)
		return fmt.Errorf("import rejected (%s): %s", st.Code(), st.Message())
	}

	_, err = fmt.Fprintf(w, "imported %d folders and %d ciphers\n", len(req.Folders), len(req.Ciphers))
	return err
}

// requestToProto converts a decoded bundle into its wire form. Payload
// parts travel as their raw JSON text.
func requestToProto(req *models.ImportRequest) *pb.ImportRequest {
	out := &pb.ImportRequest{
		Folders:             make([]*pb.ImportFolder, 0, len(req.Folders)),
		Ciphers:             make([]*pb.ImportCipher, 0, len(req.Ciphers)),
		FolderRelationships: make([]*pb.Relationship, 0, len(req.FolderRelationships)),
	}

	for _, f := range req.Folders {
		out.Folders = append(out.Folders, &pb.ImportFolder{Id: f.ID, Name: f.Name})
	}

	for _, c := range req.Ciphers {
		pc := &pb.ImportCipher{
			EncryptedFor:    c.EncryptedFor,
			Type:            int32(c.Type),
			Name:            c.Name,
			Notes:           c.Notes,
			Login:           c.Login,
			Card:            c.Card,
			Identity:        c.Identity,
			SecureNote:      c.SecureNote,
			Fields:          c.Fields,
			PasswordHistory: c.PasswordHistory,
			OrganizationId:  c.OrganizationID,
			FolderId:        c.FolderID,
			Favorite:        c.Favorite,
		}
		if c.Reprompt != nil {
			r := int32(*c.Reprompt)
			pc.Reprompt = &r
		}
		out.Ciphers = append(out.Ciphers, pc)
	}

	for _, r := range req.FolderRelationships {
		out.FolderRelationships = append(out.FolderRelationships, &pb.Relationship{
			Key:   uint32(r.Key),
			Value: uint32(r.Value),
		})
	}

	return out
}
