package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"matchboard/internal/models"
	"matchboard/internal/repository"
)

// ActivityService exposes the audit trail with normalized filtering.
type ActivityService struct {
	activity repository.Activity
}

func NewActivityService(activity repository.Activity) *ActivityService {
	return &ActivityService{activity: activity}
}

var _ ActivityLog = (*ActivityService)(nil)

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f ActivityFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	eventType := strings.TrimSpace(strings.ToUpper(f.Type))
	return from, to, eventType, nil
}

func (s *ActivityService) ListEvents(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.activity.List(ctx, from, to, typ)
}
