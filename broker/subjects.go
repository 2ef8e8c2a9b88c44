package broker

// Page-domain subjects. Telemetry subjects are best-effort fanout; the
// database row written by the telemetry service is the source of truth.
const (
	PageUpdatedSubject   = "page.updated"
	PageViewedSubject    = "page.viewed"
	PageClickedSubject   = "page.clicked"
	LeadSubmittedSubject = "lead.submitted"
)

// TelemetrySubjects lists the subjects the live dashboard consumes.
func TelemetrySubjects() []string {
	return []string{PageViewedSubject, PageClickedSubject, LeadSubmittedSubject}
}
