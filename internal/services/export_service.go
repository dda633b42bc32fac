// export_service.go renders stored submissions as CSV for the admin
// dashboard download buttons and the offline export tool.
package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/designladder/designladder_backend/internal/repository"
)

// exportTimeLayout matches the dashboard's locale-neutral timestamp format.
const exportTimeLayout = "2006-01-02 15:04:05"

// ExportService writes CSV dumps of stored submissions
type ExportService interface {
	// WriteDiagnosesCSV writes all diagnoses, newest first
	WriteDiagnosesCSV(ctx context.Context, w io.Writer) error

	// WriteChallengesCSV writes all challenge responses, newest first
	WriteChallengesCSV(ctx context.Context, w io.Writer) error
}

// exportService implements ExportService
type exportService struct {
	diagnosisRepo repository.DiagnosisRepository
	challengeRepo repository.ChallengeRepository
}

// NewExportService creates a new export service instance
func NewExportService(diagnosisRepo repository.DiagnosisRepository, challengeRepo repository.ChallengeRepository) ExportService {
	return &exportService{
		diagnosisRepo: diagnosisRepo,
		challengeRepo: challengeRepo,
	}
}

// WriteDiagnosesCSV writes all diagnoses as CSV.
// Column layout mirrors the admin dashboard table.
func (s *exportService) WriteDiagnosesCSV(ctx context.Context, w io.Writer) error {
	diagnoses, err := s.diagnosisRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load diagnoses: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{"Timestamp", "Name", "Email", "Company", "Role", "Score", "Level", "Archetype", "Feedback", "Response ID"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, d := range diagnoses {
		record := []string{
			d.CreatedAt.UTC().Format(exportTimeLayout),
			d.FullName,
			d.Email,
			d.Company,
			string(d.Role),
			strconv.Itoa(d.TotalScore),
			strconv.Itoa(d.MaturityLevel),
			d.Archetype,
			string(d.Feedback),
			d.Token(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteChallengesCSV writes all challenge responses as CSV.
func (s *exportService) WriteChallengesCSV(ctx context.Context, w io.Writer) error {
	responses, err := s.challengeRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load challenge responses: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{"Timestamp", "Problem", "Desired Outcome", "Frequency", "Team Size", "Role", "Company Size", "Budget", "Urgency", "Early Tester", "Company", "Email"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range responses {
		record := []string{
			r.CreatedAt.UTC().Format(exportTimeLayout),
			r.Problem,
			r.DesiredOutcome,
			r.Frequency,
			r.TeamSize,
			r.Role,
			r.CompanySize,
			r.Budget,
			r.Urgency,
			strconv.FormatBool(r.EarlyTester),
			r.CompanyName,
			r.Email,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename builds a dated attachment name like the dashboard does.
func ExportFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.UTC().Format("2006-01-02"))
}

// Ensure exportService implements ExportService
var _ ExportService = (*exportService)(nil)
