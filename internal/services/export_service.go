package services

import (
	"bytes"
	"context"
	"net/mail"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"impactio/internal/dashboard"
	"impactio/internal/export"
	"impactio/internal/models"
	"impactio/internal/monitoring"
	"impactio/internal/pdf"
)

var ErrInvalidRecipient = eris.New("invalid recipient address")

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
}

type ExportService struct {
	dash *DashboardService
	pdf  pdf.Generator
	mail EmailService
	now  func() time.Time
}

// NewExportService; mail may be nil when SMTP is not configured.
func NewExportService(dash *DashboardService, gen pdf.Generator, mail EmailService) *ExportService {
	return &ExportService{dash: dash, pdf: gen, mail: mail, now: time.Now}
}

// Export renders the leads currently selected by c in the requested format.
func (s *ExportService) Export(ctx context.Context, sess *models.Session, c dashboard.Criteria, format export.Format) (*ExportFile, error) {
	snap, err := s.dash.Snapshot(ctx, sess)
	if err != nil {
		return nil, err
	}
	leads := dashboard.Filter(snap.Leads, c)
	df := s.dash.DateFormat()

	var buf bytes.Buffer
	switch format {
	case export.FormatCSV:
		err = export.WriteCSV(&buf, leads, df)
	case export.FormatXLSX:
		err = export.WriteXLSX(&buf, leads, df)
	case export.FormatPDF:
		err = s.pdf.WriteLeadsReport(&buf, s.reportData(snap, leads, df))
	default:
		return nil, eris.Wrapf(export.ErrUnknownFormat, "format %q", format)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "export %s", format)
	}
	monitoring.RecordExport(string(format))
	zap.L().Info("leads exported",
		zap.Int("user_id", sess.UserID),
		zap.String("format", string(format)),
		zap.Int("rows", len(leads)),
	)
	return &ExportFile{
		Filename:    format.Filename(),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
		Rows:        len(leads),
	}, nil
}

func (s *ExportService) reportData(snap *Snapshot, leads []models.Lead, df dashboard.DateFormat) pdf.ReportData {
	m := dashboard.ComputeMetrics(snap.Leads, len(snap.Conversations))
	metrics := make([]pdf.Metric, 0, 4)
	for _, card := range dashboard.Cards(m) {
		metrics = append(metrics, pdf.Metric{Title: card.Title, Value: card.Value})
	}
	_, empty := dashboard.EmptyState(len(snap.Leads), len(leads))
	return pdf.ReportData{
		Title:       "Lead Management",
		Subtitle:    "Impactio One",
		Metrics:     metrics,
		Header:      export.Header,
		Rows:        export.Records(leads, df),
		GeneratedAt: s.now().In(locationOf(df)),
		EmptyText:   empty,
	}
}

func locationOf(df dashboard.DateFormat) *time.Location {
	if df.Location == nil {
		return time.UTC
	}
	return df.Location
}

// EmailExport renders the export and mails it. An empty recipient means the session's own address.
func (s *ExportService) EmailExport(ctx context.Context, sess *models.Session, c dashboard.Criteria, format export.Format, to string) (*ExportFile, error) {
	if s.mail == nil {
		return nil, ErrMailerDisabled
	}
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	if to == "" {
		to = sess.Email
	}
	addr, err := mail.ParseAddress(to)
	if err != nil {
		return nil, eris.Wrap(ErrInvalidRecipient, to)
	}
	file, err := s.Export(ctx, sess, c, format)
	if err != nil {
		return nil, err
	}
	err = s.mail.SendExport(addr.Address, sess.Name, Attachment{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Body:        file.Body,
	}, file.Rows)
	monitoring.RecordNotification("email", err)
	if err != nil {
		return nil, err
	}
	return file, nil
}
