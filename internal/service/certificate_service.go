package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"skillpath-backend/utilities"
)

// CertificateService renders completion certificates as PDFs.
type CertificateService interface {
	GenerateCertificate(event CourseCompletedEvent) (string, error)
}

type certificateService struct {
	outputDir string
}

func NewCertificateService(workDir string) CertificateService {
	return &certificateService{outputDir: filepath.Join(workDir, "certificates")}
}

// InitCertificateEventListeners renders a certificate whenever a course or
// roadmap completes. Rendering is best-effort: a failure is logged, never
// surfaced to the flow that completed the course.
func InitCertificateEventListeners(certService CertificateService) {
	handler := func(data interface{}) {
		event, ok := data.(CourseCompletedEvent)
		if !ok {
			utilities.Warn("invalid payload received for certificate generation")
			return
		}
		path, err := certService.GenerateCertificate(event)
		if err != nil {
			utilities.Error("failed to generate certificate for %s: %v", event.CourseID, err)
			return
		}
		utilities.Info("certificate generated at %s", path)
	}

	utilities.GlobalEventBus.Subscribe(utilities.EventCourseCompleted, handler)
	utilities.GlobalEventBus.Subscribe(utilities.EventRoadmapCompleted, handler)
}

func (s *certificateService) GenerateCertificate(event CourseCompletedEvent) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create certificate directory: %w", err)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	// Decorative border
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(41, 73, 125)
	pdf.Rect(8, 8, 281, 194, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(12, 12, 273, 186, "D")

	pdf.SetFont("Helvetica", "B", 34)
	pdf.SetTextColor(41, 73, 125)
	pdf.SetY(45)
	pdf.CellFormat(0, 16, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)
	pdf.CellFormat(0, 8, "This certifies the successful completion of", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.Ln(6)
	pdf.CellFormat(0, 12, event.CourseTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Awarded on %s", time.Now().Format("January 2, 2006")), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetY(185)
	pdf.CellFormat(0, 6, fmt.Sprintf("Certificate ID: %s", event.CourseID), "", 1, "C", false, 0, "")

	outputPath := filepath.Join(s.outputDir, fmt.Sprintf("certificate_%s.pdf", event.CourseID))
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to write certificate: %w", err)
	}
	return outputPath, nil
}
