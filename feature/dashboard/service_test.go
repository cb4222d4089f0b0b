package dashboard

import (
	"testing"
	"time"

	"onboarding-dashboard/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Overview(t *testing.T) {
	svc := NewService(utils.NewRandom(21), zap.NewNop())
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	for range 50 {
		d := svc.Overview()
		require.Len(t, d.StageData, len(Stages))

		var inProgress, pending, completed int
		for _, def := range Stages {
			st, ok := d.StageData[def.Key]
			require.True(t, ok, def.Key)
			assert.Equal(t, def.Name, st.Name)
			assert.GreaterOrEqual(t, st.InProgress, 8)
			assert.LessOrEqual(t, st.InProgress, 25)
			assert.GreaterOrEqual(t, st.Pending, 5)
			assert.LessOrEqual(t, st.Pending, 15)
			assert.GreaterOrEqual(t, st.Completed, 15)
			assert.LessOrEqual(t, st.Completed, 35)
			assert.Equal(t, st.InProgress+st.Pending+st.Completed, st.Total)

			inProgress += st.InProgress
			pending += st.Pending
			completed += st.Completed
		}

		assert.Equal(t, inProgress, d.Totals.InProgress)
		assert.Equal(t, pending, d.Totals.Pending)
		assert.Equal(t, completed, d.Totals.Completed)
		assert.GreaterOrEqual(t, d.Totals.EligibleToTrade, 18)
		assert.LessOrEqual(t, d.Totals.EligibleToTrade, 28)
	}
}

func TestService_ActionItems(t *testing.T) {
	svc := NewService(utils.NewRandom(1), zap.NewNop())
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	items := svc.Overview().ActionItems
	require.Len(t, items, 3)

	assert.Equal(t, "Review missing ISDA", items[0].Title)
	assert.Equal(t, "high", items[0].Priority)
	assert.Equal(t, fixed.AddDate(0, 0, 2), items[0].DueDate)

	assert.Equal(t, "Global Investments PLC", items[1].Client)
	assert.Equal(t, fixed.AddDate(0, 0, 5), items[1].DueDate)

	assert.Equal(t, "low", items[2].Priority)
	assert.Equal(t, fixed.AddDate(0, 0, 7), items[2].DueDate)
}

func TestData_OrderedStages(t *testing.T) {
	d := NewService(utils.NewRandom(2), zap.NewNop()).Overview()

	ordered := d.OrderedStages()
	require.Len(t, ordered, 4)
	for i, def := range Stages {
		assert.Equal(t, def.Name, ordered[i].Name)
	}
}
