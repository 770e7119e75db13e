// Package grpc runs the gRPC health endpoint used by orchestrator probes.
package grpc

import (
	"net"
	"sync"

	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/wherecaniwatch/finder/internal/config"
)

// FinderServiceName is the health-check name reported for the finder API
const FinderServiceName = "wherecaniwatch.v1.Finder"

var (
	grpcServerMetrics         *grpcprom.ServerMetrics
	registerServerMetricsOnce sync.Once
)

// Server is a gRPC server exposing grpc.health.v1 and reflection
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
}

// NewGRPCServer creates a gRPC server with Prometheus metrics, health checking
// and reflection. Both the overall and the finder service report SERVING.
func NewGRPCServer() *Server {
	registerServerMetricsOnce.Do(func() {
		grpcServerMetrics = grpcprom.NewServerMetrics(
			grpcprom.WithServerHandlingTimeHistogram(),
		)
		prometheus.MustRegister(grpcServerMetrics)
	})

	srvMetrics := grpcServerMetrics

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(srvMetrics.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(srvMetrics.StreamServerInterceptor()),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(FinderServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// For tools like grpcurl
	reflection.Register(grpcServer)

	srvMetrics.InitializeMetrics(grpcServer)

	return &Server{grpcServer: grpcServer, health: healthServer}
}

// Serve accepts connections on lis until Shutdown is called
func (s *Server) Serve(lis net.Listener) error {
	logger := config.GetLogger()
	logger.Info().Str("address", lis.Addr().String()).Msg("Starting gRPC health server")
	return s.grpcServer.Serve(lis)
}

// Shutdown marks every service NOT_SERVING so probes fail fast, then waits
// for in-flight calls to finish.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
