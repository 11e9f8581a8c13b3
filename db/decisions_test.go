package db

import (
	"testing"
	"time"

	"relaybot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionArchiveRoundtrip(t *testing.T) {
	InitDB(":memory:")
	defer DB.Close()

	archive := DecisionArchive{}
	post := &model.PendingPost{ID: 0, SubmitterID: "user-a"}
	require.NoError(t, archive.RecordDecision(post, "admin-1", "approved"))
	require.NoError(t, AddDecision(0, "user-a", "", "expired", time.Now().Add(time.Hour)))

	decisions, err := DecisionsForPost(0)
	require.NoError(t, err)
	require.Len(t, decisions, 2)

	assert.Equal(t, "approved", decisions[0].Verdict)
	assert.Equal(t, "admin-1", decisions[0].AdminID)
	assert.Equal(t, "user-a", decisions[0].SubmitterID)
	assert.Equal(t, "expired", decisions[1].Verdict)
	assert.NotEqual(t, decisions[0].ID, decisions[1].ID)

	missing, err := DecisionsForPost(42)
	require.NoError(t, err)
	assert.Empty(t, missing)
}
