package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gymplan/subplan-api/internal/models"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
	"github.com/gymplan/subplan-api/pkg/export"
)

const (
	reportTitle = "Гимназия: изменения в расписании"

	colShift       = "Смена"
	colPeriod      = "Урок"
	colClass       = "Класс"
	colSubject     = "Предмет"
	colOriginal    = "Кто отсутствует"
	colReplacement = "Кто заменяет"
	colRoom        = "Каб."
)

// ReportStorage keeps a copy of every rendered report.
type ReportStorage interface {
	Save(filename string, data []byte) (string, error)
}

// DayReport bundles a rendered substitution report.
type DayReport struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
}

// ExportService renders the day's substitutions into printable documents.
// Row order comes from the substitution join (shift, then period), so
// identical input data always produces identical output.
type ExportService struct {
	substitutions *SubstitutionService
	csv           *export.CSVExporter
	pdf           *export.PDFExporter
	storage       ReportStorage
	logger        *zap.Logger
}

// NewExportService instantiates ExportService. storage may be nil, in which
// case no copies are kept.
func NewExportService(subs *SubstitutionService, storage ReportStorage, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		substitutions: subs,
		csv:           export.NewCSVExporter(),
		pdf:           export.NewPDFExporter(),
		storage:       storage,
		logger:        logger,
	}
}

// DayReport renders the substitution list for the date as csv or pdf.
func (s *ExportService) DayReport(date, format string) (*DayReport, error) {
	details, err := s.substitutions.ListForDate(date)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{colShift, colPeriod, colClass, colSubject, colOriginal, colReplacement, colRoom},
		Rows:    make([]map[string]string, 0, len(details)),
	}
	for _, d := range details {
		shift := "I"
		if d.Shift == models.ShiftSecond {
			shift = "II"
		}
		replacement := d.ReplacementName
		if replacement == "" {
			replacement = "???"
		}
		room := d.RoomID
		if room == "" {
			room = "-"
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			colShift:       shift,
			colPeriod:      fmt.Sprintf("%d", d.Period),
			colClass:       d.ClassName,
			colSubject:     d.SubjectName,
			colOriginal:    d.OriginalName,
			colReplacement: replacement,
			colRoom:        room,
		})
	}

	report := &DayReport{Rows: len(dataset.Rows)}
	switch format {
	case "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		report.Filename = fmt.Sprintf("substitutions_%s.csv", date)
		report.ContentType = "text/csv"
		report.Content = content
	case "pdf":
		content, err := s.pdf.Render(dataset, reportTitle, "на "+date)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		report.Filename = fmt.Sprintf("substitutions_%s.pdf", date)
		report.ContentType = "application/pdf"
		report.Content = content
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q, expected csv or pdf", format))
	}

	if s.storage != nil {
		if _, err := s.storage.Save(report.Filename, report.Content); err != nil {
			s.logger.Warn("failed to keep report copy", zap.String("filename", report.Filename), zap.Error(err))
		}
	}
	return report, nil
}
