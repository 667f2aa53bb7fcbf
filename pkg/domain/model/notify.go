package model

// NotificationRule tags a team when a changed file starts with any of the
// watched path prefixes
type NotificationRule struct {
	Tag      string   `toml:"tag"`
	Body     string   `toml:"body"`
	Prefixes []string `toml:"prefixes"`
}

// CommentSection is one tagged section of a sticky PR comment
type CommentSection struct {
	Tag  string
	Body string
}

// NotifyResult reports which rules matched and were commented
type NotifyResult struct {
	Matches []NotifyMatch
}

// NotifyMatch records the first changed file that triggered a rule
type NotifyMatch struct {
	Tag  string
	File string
}

// Commented reports whether at least one comment upsert was issued
func (r *NotifyResult) Commented() bool {
	return len(r.Matches) > 0
}
