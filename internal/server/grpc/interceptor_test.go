package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

type recordingLogger struct {
	logging.Nop
	msgs []string
	args [][]any
}

func (r *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}

func TestLoggingInterceptor_PassesThroughAndLogs(t *testing.T) {
	log := &recordingLogger{}
	s := &GRPCServer{logger: log}
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := s.loggingInterceptor(context.Background(), nil, info,
		func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	wantErr := errors.New("boom")
	_, err = s.loggingInterceptor(context.Background(), nil, info,
		func(ctx context.Context, req interface{}) (interface{}, error) { return nil, wantErr })
	require.ErrorIs(t, err, wantErr)

	require.Len(t, log.msgs, 2)
	assert.Equal(t, "grpc call", log.msgs[0])
	assert.Contains(t, log.args[0], "/grpc.health.v1.Health/Check")
	assert.Contains(t, log.args[0], "OK")
	assert.Contains(t, log.args[1], "Unknown")
}
