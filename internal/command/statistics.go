package command

import (
	"fmt"

	"github.com/dshills/socialbook/internal/stats"
)

const (
	StatisticsWord  = "statistics"
	StatisticsUsage = StatisticsWord +
		": Displays the overall statistics regarding all the people in SocialBook.\n" +
		"Example: " + StatisticsWord
)

// Statistics reports how many displayed persons fall in each priority tier.
type Statistics struct {
	resultMessage string
	report        stats.Report
}

// Execute computes the report over the displayed persons.
func (c *Statistics) Execute(m Model) (Result, error) {
	r, err := stats.FromModel(m)
	if err != nil {
		return Result{}, &Error{Command: StatisticsWord, Err: err}
	}
	c.report = r
	c.resultMessage = r.String()
	return Result{Feedback: fmt.Sprintf(stats.MessageSuccess, c.resultMessage)}, nil
}

// Report returns the most recently computed report.
func (c *Statistics) Report() stats.Report { return c.report }

// ResultMessage returns the lines of the most recent report, or "" before
// the first successful Execute.
func (c *Statistics) ResultMessage() string { return c.resultMessage }

// Equal reports whether both commands produced the same last result.
func (c *Statistics) Equal(other *Statistics) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.resultMessage == other.resultMessage
}
