// Package handler exposes readiness as the standard grpc.health.v1 service for orchestrator probes.
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"projectboard/internal/health"
)

// ServiceName is the service name reported besides the empty (whole server) name.
const ServiceName = "projectboard"

// Server implements grpc.health.v1 Health. Check runs the readiness checks on every call; Watch and
// List are left unimplemented.
type Server struct {
	healthpb.UnimplementedHealthServer
	checker *health.Checker
}

// NewServer returns a health server backed by checker.
func NewServer(checker *health.Checker) *Server {
	return &Server{checker: checker}
}

// Check reports SERVING when every readiness check passes and NOT_SERVING otherwise. A failing check is
// never returned as a gRPC error.
func (s *Server) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %s", svc)
	}
	if s.checker == nil || s.checker.Check(ctx).Ready {
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
}
