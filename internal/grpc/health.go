// Package grpc serves the standard gRPC health protocol for the
// master-data service, optionally behind a shared service token.
package grpc

import (
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name reported to health checks for the master-data API.
const ServiceName = "semaphore.masterdata"

// Server bundles the gRPC server and the health registry the probe job updates.
type Server struct {
	GRPC   *grpc.Server
	Health *health.Server
}

// NewServer builds the gRPC server. A non-empty serviceToken makes every
// call, unary or streaming, present it in x-service-token metadata.
func NewServer(serviceToken string, log zerolog.Logger) (*Server, error) {
	var opts []grpc.ServerOption
	if serviceToken != "" {
		var err error
		if opts, err = ServiceAuthOptions(serviceToken, log); err != nil {
			return nil, err
		}
	} else {
		log.Warn().Str("component", "grpc").Msg("service token not set, health endpoint is unauthenticated")
	}

	srv := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Server{GRPC: srv, Health: hs}, nil
}

// SetServing flips both the overall and the service-specific status.
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.Health.SetServingStatus("", st)
	s.Health.SetServingStatus(ServiceName, st)
}

// Stop drains in-flight calls.
func (s *Server) Stop() {
	s.Health.Shutdown()
	s.GRPC.GracefulStop()
}
