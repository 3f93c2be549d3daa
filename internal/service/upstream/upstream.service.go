package upstream

import (
	"context"
	"errors"
	"fmt"
	"timeservice/internal/common/enum"
	types "timeservice/internal/common/type"
	"timeservice/internal/pkg/config"
	"timeservice/internal/pkg/helper"
	"timeservice/internal/pkg/logger"
	"timeservice/internal/pkg/validation"
)

var (
	// ErrUnavailable means the provider could not be reached at all.
	ErrUnavailable = errors.New("failed to connect to API2")
	// ErrMalformedResponse means the provider answered 2xx but the body did
	// not decode into the expected shape.
	ErrMalformedResponse = errors.New("failed to parse response from API2")
)

// StatusError means the provider answered with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API2 returned status: %d", e.Code)
}

type Service struct {
	cfg *config.Config
	log *logger.Logger
}

type IService interface {
	FetchTime(ctx context.Context, timezone, requestID string) (*types.TimeResult, error)
}

func NewService(cfg *config.Config, log *logger.Logger) IService {
	return &Service{cfg: cfg, log: log}
}

// FetchTime forwards the time request to the provider, passing along the
// gateway-minted request id so both services log under the same identifier.
func (s *Service) FetchTime(ctx context.Context, timezone, requestID string) (*types.TimeResult, error) {
	s.log.Info.Printf("request_id=%s api2_url=%s forwarding request to API2", requestID, s.cfg.ProviderURL)

	resp, err := helper.HTTPRequest(
		&helper.HTTPRequestPayload{
			Method: enum.GET,
			URL:    s.cfg.ProviderURL + "/time",
			Params: map[string]string{
				"timezone":   timezone,
				"request_id": requestID,
			},
		},
		&helper.HTTPRequestConfig{
			Ctx:     ctx,
			Timeout: s.cfg.UpstreamTimeout,
		},
	)
	if err != nil {
		s.log.Error.Printf("request_id=%s error=%v failed to connect to API2", requestID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Error.Printf("request_id=%s status=%d API2 returned error status", requestID, resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var result types.TimeResult
	if err := helper.ByteToStruct(resp.Body, &result); err != nil {
		s.log.Error.Printf("request_id=%s error=%v failed to parse response from API2", requestID, err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validation.Validate(&result); err != nil {
		s.log.Error.Printf("request_id=%s error=%v incomplete response from API2", requestID, err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	s.log.Info.Printf("request_id=%s timestamp=%s successfully received response from API2", requestID, result.Timestamp)
	return &result, nil
}
