package clock

import (
	"fmt"
	"time"
	types "timeservice/internal/common/type"
	"timeservice/internal/pkg/logger"
)

// zoneAliases maps every accepted timezone identifier to its IANA zone.
// Matching is exact and case-sensitive; anything absent falls back to UTC.
var zoneAliases = map[string]string{
	"EST":           "US/Eastern",
	"US/Eastern":    "US/Eastern",
	"PST":           "US/Pacific",
	"US/Pacific":    "US/Pacific",
	"CET":           "Europe/Berlin",
	"Europe/Berlin": "Europe/Berlin",
}

type Service struct {
	log   *logger.Logger
	zones map[string]*time.Location
}

type IService interface {
	Now(timezone, requestID string) types.TimeResult
}

func NewService(log *logger.Logger) (IService, error) {
	zones := map[string]*time.Location{"UTC": time.UTC}
	for alias, name := range zoneAliases {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("loading timezone %s: %w", name, err)
		}
		zones[alias] = loc
	}
	return &Service{log: log, zones: zones}, nil
}

// Now resolves the current instant in the requested timezone. The returned
// timezone field echoes the raw input even when it was unsupported.
func (s *Service) Now(timezone, requestID string) types.TimeResult {
	s.log.Info.Printf("request_id=%s timezone=%s processing time request", requestID, timezone)

	loc, ok := s.zones[timezone]
	if !ok {
		s.log.Info.Printf("request_id=%s timezone=%s unsupported timezone, defaulting to UTC", requestID, timezone)
		loc = time.UTC
	}
	timestamp := time.Now().In(loc).Format(time.RFC3339Nano)

	s.log.Info.Printf("request_id=%s timestamp=%s timezone=%s time request processed", requestID, timestamp, timezone)

	return types.TimeResult{
		Timestamp: timestamp,
		Timezone:  timezone,
		RequestID: requestID,
		Source:    types.SourceProvider,
	}
}
