package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// HealthProbe checks whether the API server is reachable via its gRPC health
// endpoint.
type HealthProbe struct {
	conn    *grpc.ClientConn
	client  healthpb.HealthClient
	service string
}

func NewHealthProbe(addr string, opts ...grpc.DialOption) (*HealthProbe, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &HealthProbe{
		conn:    conn,
		client:  healthpb.NewHealthClient(conn),
		service: common.HealthServiceName,
	}, nil
}

func (p *HealthProbe) Ping(ctx context.Context) error {
	resp, err := p.client.Check(ctx, &healthpb.HealthCheckRequest{Service: p.service})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (p *HealthProbe) Close() error {
	return p.conn.Close()
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded, codes.NotFound:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
