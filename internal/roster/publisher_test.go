package roster

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	assert.Equal(t, "activities:Chess Club", Channel("Chess Club"))
}

func TestEncodeFillsTimestamp(t *testing.T) {
	body, err := encode(Event{Type: EventSignedUp, Activity: "Gym Class", Email: "john@mergington.edu"})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "signed_up", got["event"])
	assert.Equal(t, "Gym Class", got["activity"])
	assert.Equal(t, "john@mergington.edu", got["email"])
	assert.NotEmpty(t, got["at"])
}

func TestEncodeKeepsTimestamp(t *testing.T) {
	at := time.Date(2024, 9, 1, 15, 30, 0, 0, time.UTC)
	body, err := encode(Event{Type: EventUnregistered, Activity: "Chess Club", Email: "a@b.c", At: at})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"at":"2024-09-01T15:30:00Z"`)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Event{Type: EventSignedUp}))
}
