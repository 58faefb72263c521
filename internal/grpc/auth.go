package grpc

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const serviceTokenHeader = "x-service-token"

// serviceAuth checks the shared token carried in x-service-token metadata.
type serviceAuth struct {
	token []byte
	log   zerolog.Logger
}

func newServiceAuth(expectedToken string, log zerolog.Logger) (*serviceAuth, error) {
	if expectedToken == "" {
		return nil, errors.New("service auth token required")
	}
	return &serviceAuth{
		token: []byte(expectedToken),
		log:   log.With().Str("component", "grpc_auth").Logger(),
	}, nil
}

func (a *serviceAuth) check(ctx context.Context, method string) error {
	token := serviceTokenFromMetadata(ctx)
	if token == "" {
		a.log.Warn().Str("method", method).Msg("rejected call without service token")
		return status.Error(codes.Unauthenticated, "missing_service_token")
	}
	if subtle.ConstantTimeCompare([]byte(token), a.token) != 1 {
		a.log.Warn().Str("method", method).Msg("rejected call with invalid service token")
		return status.Error(codes.PermissionDenied, "invalid_service_token")
	}
	return nil
}

func (a *serviceAuth) unary(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if err := a.check(ctx, info.FullMethod); err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

// stream guards server-streaming calls such as Health/Watch and reflection.
func (a *serviceAuth) stream(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if err := a.check(ss.Context(), info.FullMethod); err != nil {
		return err
	}
	return handler(srv, ss)
}

// ServiceAuthOptions returns server options that require the token on
// every unary and streaming call.
func ServiceAuthOptions(expectedToken string, log zerolog.Logger) ([]grpc.ServerOption, error) {
	auth, err := newServiceAuth(expectedToken, log)
	if err != nil {
		return nil, err
	}
	return []grpc.ServerOption{
		grpc.UnaryInterceptor(auth.unary),
		grpc.StreamInterceptor(auth.stream),
	}, nil
}

func serviceTokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(serviceTokenHeader)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
