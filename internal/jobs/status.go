package jobs

// Status is the lifecycle state of a transcription job. Jobs are
// request-scoped, so statuses appear in logs and spans rather than in a
// store.
type Status string

const (
	StatusReceived     Status = "received"
	StatusNormalizing  Status = "normalizing"
	StatusDownloading  Status = "downloading"
	StatusTranscribing Status = "transcribing"
	StatusCleaningUp   Status = "cleaning_up"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
)

// Request describes one transcription job.
type Request struct {
	// URL is the video page URL as submitted by the client.
	URL string
	// Language is an optional ISO 639-1 hint. Empty means auto-detect.
	Language string
}
