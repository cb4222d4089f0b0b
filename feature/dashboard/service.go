package dashboard

import (
	"time"

	"onboarding-dashboard/core/utils"

	"go.uber.org/zap"
)

// Service produces the onboarding overview.
type Service struct {
	rnd    *utils.Random
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new dashboard service.
func NewService(rnd *utils.Random, logger *zap.Logger) *Service {
	if rnd == nil {
		rnd = utils.NewRandom(0)
	}
	return &Service{rnd: rnd, logger: logger, now: time.Now}
}

// Overview builds a fresh snapshot of the onboarding pipeline.
func (s *Service) Overview() Data {
	data := Data{StageData: make(map[string]Stage, len(Stages))}

	for _, def := range Stages {
		st := Stage{
			Key:        def.Key,
			Name:       def.Name,
			InProgress: s.rnd.IntRange(8, 25),
			Pending:    s.rnd.IntRange(5, 15),
			Completed:  s.rnd.IntRange(15, 35),
		}
		st.Total = st.InProgress + st.Pending + st.Completed
		data.StageData[def.Key] = st

		data.Totals.InProgress += st.InProgress
		data.Totals.Pending += st.Pending
		data.Totals.Completed += st.Completed
	}
	data.Totals.EligibleToTrade = s.rnd.IntRange(18, 28)

	now := s.now()
	data.ActionItems = []ActionItem{
		{Title: "Review missing ISDA", Client: "Quantum Fund Ltd.", Priority: "high", DueDate: now.AddDate(0, 0, 2)},
		{Title: "Approve SSI Setup", Client: "Global Investments PLC", Priority: "medium", DueDate: now.AddDate(0, 0, 5)},
		{Title: "Resolve DQ mismatch", Client: "Pinnacle Corp.", Priority: "low", DueDate: now.AddDate(0, 0, 7)},
	}

	return data
}
