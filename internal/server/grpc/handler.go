package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	pb "github.com/dmitrijs2005/vaultkeeper/internal/proto"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/auth"
)

func (s *GRPCServer) Import(ctx context.Context, in *pb.ImportRequest) (*pb.ImportResponse, error) {
	owner, ok := auth.SubjectFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	req, err := requestFromProto(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.importer.Import(ctx, owner, req); err != nil {
		if common.IsClientFault(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, "import failed", "owner", owner, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ImportResponse{}, nil
}
