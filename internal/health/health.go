// Package health tracks whether the service is accepting traffic. The same
// status backs the HTTP /health endpoint and the gRPC health service.
package health

import (
	"context"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name reported alongside the overall status.
const ServiceName = "snake-arena"

// Checker holds the serving status.
type Checker struct {
	srv *grpchealth.Server
}

// New returns a Checker that reports SERVING.
func New() *Checker {
	srv := grpchealth.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	srv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return &Checker{srv: srv}
}

// Register exposes the status on a gRPC server.
func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.srv)
}

// Healthy reports whether the service is SERVING.
func (c *Checker) Healthy(ctx context.Context) bool {
	resp, err := c.srv.Check(ctx, &healthpb.HealthCheckRequest{})
	return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

// Shutdown flips every service to NOT_SERVING. It cannot be undone.
func (c *Checker) Shutdown() {
	c.srv.Shutdown()
}
