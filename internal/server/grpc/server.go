// Package grpc runs the gRPC side of the API server: the standard health
// service the client polls to show its online indicator.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Checker reports whether the backing storage is usable.
type Checker func(ctx context.Context) error

type GRPCServer struct {
	address       string
	logger        logging.Logger
	health        *health.Server
	check         Checker
	checkInterval time.Duration
}

// NewGRPCServer builds the server. With a nil check the service always
// reports SERVING.
func NewGRPCServer(a string, l logging.Logger, check Checker, interval time.Duration) *GRPCServer {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		health:        health.NewServer(),
		check:         check,
		checkInterval: interval,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)

	s.updateStatus(ctx)
	go s.watch(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

func (s *GRPCServer) updateStatus(ctx context.Context) {
	st := healthpb.HealthCheckResponse_SERVING
	if s.check != nil {
		if err := s.check(ctx); err != nil {
			s.logger.Warn(ctx, "storage check failed", "err", err)
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus(common.HealthServiceName, st)
	s.health.SetServingStatus("", st)
}

func (s *GRPCServer) watch(ctx context.Context) {
	if s.check == nil || s.checkInterval <= 0 {
		return
	}
	t := time.NewTicker(s.checkInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.updateStatus(ctx)
		}
	}
}
