package server

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	healthhandler "projectboard/internal/health/handler"
)

// NewGRPCServer returns a gRPC server instrumented with otelgrpc and serving grpc.health.v1.
func NewGRPCServer(health *healthhandler.Server, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.StatsHandler(otelgrpc.NewServerHandler())}, opts...)
	s := grpc.NewServer(opts...)
	RegisterServices(s, health)
	return s
}

// RegisterServices registers the gRPC services with s.
func RegisterServices(s grpc.ServiceRegistrar, health *healthhandler.Server) {
	if health == nil {
		health = healthhandler.NewServer(nil)
	}
	healthpb.RegisterHealthServer(s, health)
}
