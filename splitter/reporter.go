package splitter

// Reporter receives the diagnostics of a split as it happens.
type Reporter interface {
	// Attempt is called before each encoding is tried by SplitWithFallback.
	Attempt(encoding string)
	// AttemptFailed is called when an encoding attempt fails.
	AttemptFailed(encoding string, err error)
	LineSkipped(line int)
	// LineAssigned receives at most PreviewLength runes of the line.
	LineAssigned(line int, bucket Bucket, preview string)
	ReadFinished(totalLines, nonBlankLines int)
	BucketCounts(odd, even int)
	Written(bucket Bucket, path string)
	Warn(w Warning)
	Succeeded()
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Attempt(string) {}
func (NopReporter) AttemptFailed(string, error) {}
func (NopReporter) LineSkipped(int) {}
func (NopReporter) LineAssigned(int, Bucket, string) {}
func (NopReporter) ReadFinished(int, int) {}
func (NopReporter) BucketCounts(int, int) {}
func (NopReporter) Written(Bucket, string) {}
func (NopReporter) Warn(Warning) {}
func (NopReporter) Succeeded() {}
