package model

import "errors"

// Upload describes a single local file to object storage copy
type Upload struct {
	LocalPath string
	Bucket    string
	Key       string
	// WithRename stores the file under Key as is. Otherwise Key is treated
	// as a prefix and the local file name is appended.
	WithRename bool
}

// UploadOutcome is the result of one Upload attempt
type UploadOutcome struct {
	Upload Upload
	URL    string // Public URL of the stored object
	Size   int64  // Bytes written to storage
	Err    error
}

// PublishStatus is the overall status of an artifact publishing run
type PublishStatus string

const (
	PublishStatusPublished      PublishStatus = "published"
	PublishStatusSkipped        PublishStatus = "skipped"
	PublishStatusPartialFailure PublishStatus = "partial_failure"
)

// PublishResult is the typed result of the artifact publisher. A partial
// failure never fails the job; it is reported instead.
type PublishResult struct {
	Status   PublishStatus
	Reason   string
	Route    *PublishRoute
	Outcomes []UploadOutcome
}

// Err joins the errors of all failed uploads
func (r *PublishResult) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

// Failed returns the outcomes that carry an error
func (r *PublishResult) Failed() []UploadOutcome {
	var failed []UploadOutcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
