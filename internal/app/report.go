package app

type Report struct {
	Puzzle string       `json:"puzzle"`
	Parts  []PartResult `json:"parts"`
}

type PartResult struct {
	Name           string `json:"name"`
	Answer         uint64 `json:"answer"`
	Line           string `json:"line"`
	DurationMicros int64  `json:"duration_micros"`
}

func (r *Report) Answers() []uint64 {
	out := make([]uint64, 0, len(r.Parts))
	for _, p := range r.Parts {
		out = append(out, p.Answer)
	}
	return out
}

func (r *Report) Lines() []string {
	out := make([]string, 0, len(r.Parts))
	for _, p := range r.Parts {
		out = append(out, p.Line)
	}
	return out
}
