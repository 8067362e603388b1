package questions

import (
	"strings"

	"countrystats/domain/dataset"
)

// DefaultTopN is how many rows the ranking questions list
const DefaultTopN = 5

// Section is one question's block of the report
type Section struct {
	Label string   // "a" through "h"
	Lines []string // body, one entry per output line
}

// String renders "Question <label>:\n<lines>"
func (s Section) String() string {
	return "Question " + s.Label + ":\n" + strings.Join(s.Lines, "\n")
}

// Options shapes the ranking questions
type Options struct {
	TopN            int
	LanguageRanking LanguageRanking
}

// DefaultOptions returns top 5 with normalized language shares
func DefaultOptions() Options {
	return Options{TopN: DefaultTopN, LanguageRanking: RankNormalized}
}

// Build answers questions a through h in order
func Build(ds *dataset.Dataset, opts Options) []Section {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.LanguageRanking == "" {
		opts.LanguageRanking = RankNormalized
	}

	a, countries := QuestionA(ds)
	return []Section{
		a,
		QuestionB(ds, opts.TopN),
		QuestionC(ds, opts.TopN),
		QuestionD(ds),
		QuestionE(ds),
		QuestionF(ds, opts.TopN),
		QuestionG(ds, opts.TopN, opts.LanguageRanking),
		QuestionH(countries),
	}
}

// Render joins sections with a blank line between consecutive blocks and
// no trailing newline
func Render(sections []Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.String()
		if i > 0 {
			parts[i] = "\n" + parts[i]
		}
	}
	return strings.Join(parts, "\n")
}
