package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// stubGroupService answers GetGroup and rejects GetGroupBalances with faults.
type stubGroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	seenRequestID string
}

func (s *stubGroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	s.seenRequestID = GetRequestID(ctx)
	return connect.NewResponse(&pb.GetGroupResponse{Group: &pb.Group{Id: req.Msg.GroupId}}), nil
}

func (s *stubGroupService) GetGroupBalances(context.Context, *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.GetGroupBalancesResponse], error) {
	err := errors.Join(calculator.ErrUnknownMember, calculator.ErrDegenerateSplit)
	return nil, connect.NewError(connect.CodeFailedPrecondition, err)
}

func setupServer(t *testing.T, interceptors ...connect.Interceptor) (protoconnect.GroupServiceClient, *stubGroupService) {
	t.Helper()
	svc := &stubGroupService{}
	path, handler := protoconnect.NewGroupServiceHandler(svc, connect.WithInterceptors(interceptors...))

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL), svc
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRequestIDInterceptor(t *testing.T) {
	client, svc := setupServer(t, RequestIDInterceptor())
	ctx := context.Background()

	t.Run("generates an ID", func(t *testing.T) {
		resp, err := client.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: "g1"}))
		require.NoError(t, err)
		assert.NotEmpty(t, svc.seenRequestID)
		assert.Equal(t, svc.seenRequestID, resp.Header().Get(RequestIDHeader))
	})

	t.Run("keeps a client ID", func(t *testing.T) {
		req := connect.NewRequest(&pb.GetGroupRequest{GroupId: "g1"})
		req.Header().Set(RequestIDHeader, "req-123")

		resp, err := client.GetGroup(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "req-123", svc.seenRequestID)
		assert.Equal(t, "req-123", resp.Header().Get(RequestIDHeader))
	})
}

func TestLoggingInterceptor(t *testing.T) {
	logs := captureLogs(t)
	client, _ := setupServer(t, RequestIDInterceptor(), LoggingInterceptor())
	ctx := context.Background()

	req := connect.NewRequest(&pb.GetGroupRequest{GroupId: "g1"})
	req.Header().Set(RequestIDHeader, "req-ok")
	_, err := client.GetGroup(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "RPC ok")
	assert.Contains(t, logs.String(), "request_id=req-ok")
	assert.Contains(t, logs.String(), protoconnect.GroupServiceGetGroupProcedure)

	logs.Reset()
	_, err = client.GetGroupBalances(ctx, connect.NewRequest(&pb.GetGroupBalancesRequest{GroupId: "g1"}))
	require.Error(t, err)
	assert.Contains(t, logs.String(), "RPC rejected")
	assert.Contains(t, logs.String(), "code=failed_precondition")
	assert.Contains(t, logs.String(), "faults=2")

	logs.Reset()
	_, err = client.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	assert.Equal(t, connect.CodeUnimplemented, connect.CodeOf(err))
	assert.Contains(t, logs.String(), "code=unimplemented")
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, _ := setupServer(t, MetricsInterceptor(metrics.New(reg)))
	ctx := context.Background()

	_, err := client.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: "g1"}))
	require.NoError(t, err)
	_, err = client.GetGroupBalances(ctx, connect.NewRequest(&pb.GetGroupBalancesRequest{GroupId: "g1"}))
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	codes := make(map[string]float64)
	for _, f := range families {
		if f.GetName() != "splitledger_rpc_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "code" {
					codes[l.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, 1.0, codes["ok"])
	assert.Equal(t, 1.0, codes["failed_precondition"])
}
