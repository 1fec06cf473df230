package result

const (
	TypeError   = "error"
	TypeWarning = "warning"
	TypeInfo    = "info"
)

type Issue struct {
	Type    string `json:"type"` // "error", "warning" or "info"
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column,omitempty"`
	RuleID  string `json:"rule_id,omitempty"`
	File    string `json:"file,omitempty"`

	// FromTool groups issues in the persisted payload and drives the
	// per-tool score penalties, it's not serialized per issue.
	FromTool string `json:"-"`
}

func NewIssue(fromTool, issueType, message, file string, line int) Issue {
	return Issue{
		FromTool: fromTool,
		Type:     issueType,
		Message:  message,
		File:     file,
		Line:     line,
	}
}

// ToolError describes a tool which didn't produce issues: it's missing
// on the machine or crashed. It doesn't fail the whole analysis.
type ToolError struct {
	Tool string `json:"tool"`
	Text string `json:"text"`
}

type Result struct {
	Issues     []Issue     `json:"issues"`
	ToolErrors []ToolError `json:"tool_errors,omitempty"`
}

func (r Result) IssuesPerTool() map[string]int {
	ret := map[string]int{}
	for _, i := range r.Issues {
		ret[i.FromTool]++
	}

	return ret
}
