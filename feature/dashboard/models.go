package dashboard

import "time"

// Stage is one step of the onboarding pipeline with its client counts.
type Stage struct {
	Key        string `json:"-"`
	Name       string `json:"name"`
	InProgress int    `json:"in_progress"`
	Pending    int    `json:"pending"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
}

// Totals sums the stage counts.
type Totals struct {
	InProgress      int `json:"in_progress"`
	Pending         int `json:"pending"`
	Completed       int `json:"completed"`
	EligibleToTrade int `json:"eligible_to_trade"`
}

// ActionItem is a task awaiting an operator.
type ActionItem struct {
	Title    string    `json:"title"`
	Client   string    `json:"client"`
	Priority string    `json:"priority"`
	DueDate  time.Time `json:"due_date"`
}

// Data is everything the dashboard page and API expose.
type Data struct {
	StageData   map[string]Stage `json:"stage_data"`
	Totals      Totals           `json:"totals"`
	ActionItems []ActionItem     `json:"action_items"`
}

// OrderedStages returns the stages in pipeline order.
func (d Data) OrderedStages() []Stage {
	out := make([]Stage, 0, len(Stages))
	for _, s := range Stages {
		if st, ok := d.StageData[s.Key]; ok {
			out = append(out, st)
		}
	}
	return out
}

// StageDef names a pipeline stage.
type StageDef struct {
	Name string
	Key  string
}

// Stages is the onboarding pipeline in order.
var Stages = []StageDef{
	{Name: "Regulatory Due Diligence", Key: "regulatory"},
	{Name: "Contract Setup", Key: "contracts"},
	{Name: "Account Setup", Key: "account_setup"},
	{Name: "SSI Setup", Key: "ssi_setup"},
}
