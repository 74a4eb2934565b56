package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/stats"
	"github.com/pageza/homechef/backend/internal/types"
)

// ReportURLExpiry is how long a report download link stays valid
const ReportURLExpiry = 15 * time.Minute

// AdminReport is the archived document
type AdminReport struct {
	GeneratedOn string           `json:"generatedOn"`
	Stats       stats.AdminStats `json:"stats"`
}

// ReportService renders admin stats and archives them in object storage
type ReportService struct {
	dashboard IDashboardService
	store     ReportStore
	today     func() time.Time
	log       logrus.FieldLogger
}

// NewReportService creates a ReportService. store may be nil, in which case
// Archive returns ErrReportsDisabled.
func NewReportService(dashboard IDashboardService, store ReportStore, today func() time.Time, log logrus.FieldLogger) *ReportService {
	return &ReportService{dashboard: dashboard, store: store, today: today, log: log}
}

// Render returns the report document as indented JSON
func (s *ReportService) Render(ctx context.Context) ([]byte, error) {
	st, err := s.dashboard.AdminStats(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(AdminReport{GeneratedOn: models.DateOf(s.today()), Stats: *st}, "", "  ")
}

// Archive uploads a fresh report and returns its key and a download link
func (s *ReportService) Archive(ctx context.Context) (*types.ReportResponse, error) {
	if s.store == nil {
		return nil, ErrReportsDisabled
	}
	body, err := s.Render(ctx)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reports/admin-stats/%s/%s.json", models.DateOf(s.today()), uuid.New())
	if err := s.store.PutJSON(ctx, key, body); err != nil {
		return nil, pkgerrors.Wrapf(err, "upload report %s", key)
	}

	resp := &types.ReportResponse{Key: key}
	url, err := s.store.GeneratePresignedURL(ctx, key, ReportURLExpiry)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("presign report url")
	} else {
		resp.URL = url
	}
	s.log.WithField("key", key).Info("archived admin report")
	return resp, nil
}
