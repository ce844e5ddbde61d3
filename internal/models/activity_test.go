package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityViewEmptyRosterIsArray(t *testing.T) {
	a := Activity{Name: "Art Club", Description: "Paint", Schedule: "Mondays", MaxParticipants: 5}

	body, err := json.Marshal(a.View())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Art Club","description":"Paint","schedule":"Mondays","max_participants":5,"participants":[]}`, string(body))
}

func TestActivityViewKeepsRosterOrder(t *testing.T) {
	a := Activity{
		Name: "Chess Club",
		Participants: []Participant{
			{ID: 1, Email: "michael@mergington.edu"},
			{ID: 2, Email: "daniel@mergington.edu"},
		},
	}

	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, a.View().Participants)
	assert.True(t, a.HasParticipant("daniel@mergington.edu"))
	assert.False(t, a.HasParticipant("emma@mergington.edu"))
}
