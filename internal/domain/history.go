package domain

// MaxHistory is the maximum number of records a History holds.
const MaxHistory = 10

// History is the most-recent-first log of successful conversions.
// Its length never exceeds MaxHistory.
type History []ConversionRecord

// Record returns a new History with rec prepended and the oldest entries
// beyond MaxHistory dropped. h is not modified. Equal records are kept.
func (h History) Record(rec ConversionRecord) History {
	keep := len(h)
	if keep > MaxHistory-1 {
		keep = MaxHistory - 1
	}
	out := make(History, 0, keep+1)
	out = append(out, rec)
	return append(out, h[:keep]...)
}

// Truncate returns h limited to its first MaxHistory records.
func (h History) Truncate() History {
	if len(h) <= MaxHistory {
		return h
	}
	return h[:MaxHistory:MaxHistory]
}

// Clone returns a copy of h that shares no memory with it.
func (h History) Clone() History {
	if h == nil {
		return History{}
	}
	return append(History(nil), h...)
}

// Empty reports whether h has no records.
func (h History) Empty() bool {
	return len(h) == 0
}
