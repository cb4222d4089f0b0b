package regulatory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Summaries(t *testing.T) {
	s := NewStore()
	s.SaveClient(ClientData{ClientID: "C-1", EntityName: "Pinnacle Corp."})

	s.SaveClassification(&Classification{
		ClassificationID: "a",
		ClientID:         "C-1",
		Status:           StatusPassed,
		HighLevelChecks:  make([]HighLevelCheck, 2),
		DQChecks:         make([]DataQualityCheck, 3),
	})
	s.SaveClassification(&Classification{ClassificationID: "b", ClientID: "ghost"})

	got := s.Summaries()
	require.Len(t, got, 2)

	assert.Equal(t, "a", got[0].ClassificationID)
	assert.Equal(t, "Pinnacle Corp.", got[0].ClientName)
	assert.Equal(t, 5, got[0].TotalChecks)

	assert.Equal(t, "b", got[1].ClassificationID)
	assert.Equal(t, "Unknown", got[1].ClientName)
}

func TestStore_ResaveKeepsOrder(t *testing.T) {
	s := NewStore()
	s.SaveClassification(&Classification{ClassificationID: "a"})
	s.SaveClassification(&Classification{ClassificationID: "b"})
	s.SaveClassification(&Classification{ClassificationID: "a", Status: StatusFailed})

	got := s.Summaries()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ClassificationID)
	assert.Equal(t, StatusFailed, got[0].Status)
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("C-%d", i)
			s.SaveClient(ClientData{ClientID: id})
			s.SaveClassification(&Classification{ClassificationID: id, ClientID: id})
			_ = s.Summaries()
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Summaries(), 50)
	_, ok := s.Classification("C-7")
	assert.True(t, ok)
}
