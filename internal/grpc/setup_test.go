package grpc

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
)

func startServer(t *testing.T) (*Server, *grpc.ClientConn) {
	t.Helper()
	srv := NewGRPCServer()

	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
		srv.Shutdown()
	})
	return srv, conn
}

func TestNewGRPCServer_CanBeCreatedTwice(t *testing.T) {
	first := NewGRPCServer()
	second := NewGRPCServer()
	if first == nil || second == nil {
		t.Fatal("Expected non-nil gRPC servers")
	}
}

func TestNewGRPCServer_HealthCheck(t *testing.T) {
	_, conn := startServer(t)
	healthClient := grpc_health_v1.NewHealthClient(conn)

	for _, service := range []string{"", FinderServiceName} {
		resp, err := healthClient.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
		if err != nil {
			t.Fatalf("Health check for %q failed: %v", service, err)
		}
		if resp.Status != grpc_health_v1.HealthCheckResponse_SERVING {
			t.Errorf("Expected SERVING for %q, got %v", service, resp.Status)
		}
	}
}

func TestNewGRPCServer_UnknownServiceIsNotFound(t *testing.T) {
	_, conn := startServer(t)
	healthClient := grpc_health_v1.NewHealthClient(conn)

	if _, err := healthClient.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: "nope.v1.Nope"}); err == nil {
		t.Fatal("Expected an error for an unregistered service name")
	}
}

func TestServer_ShutdownMarksNotServing(t *testing.T) {
	srv, _ := startServer(t)

	srv.health.Shutdown()
	resp, err := srv.health.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: FinderServiceName})
	if err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected NOT_SERVING after shutdown, got %v", resp.Status)
	}
}

func TestNewGRPCServer_ReflectionEnabled(t *testing.T) {
	_, conn := startServer(t)

	reflectionClient := grpc_reflection_v1.NewServerReflectionClient(conn)
	stream, err := reflectionClient.ServerReflectionInfo(context.Background())
	if err != nil {
		t.Fatalf("Failed to open reflection stream: %v", err)
	}

	if err := stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_ListServices{ListServices: ""},
	}); err != nil {
		t.Fatalf("Failed to send reflection request: %v", err)
	}

	resp, err := stream.Recv()
	if err != nil {
		t.Fatalf("Failed to receive reflection response: %v", err)
	}

	found := false
	for _, svc := range resp.GetListServicesResponse().GetService() {
		if svc.GetName() == "grpc.health.v1.Health" {
			found = true
		}
	}
	if !found {
		t.Error("Expected grpc.health.v1.Health in the reflection service list")
	}
}
