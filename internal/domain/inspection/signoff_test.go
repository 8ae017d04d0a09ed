package inspection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "luster/internal/domain/inspection/valueobjects"
)

func TestNewSignoff(t *testing.T) {
	tests := []struct {
		name       string
		signerType vo.SignerType
		signerName string
		comments   string
		wantErr    string
	}{
		{
			name:       "supervisor",
			signerType: vo.SignerSupervisor,
			signerName: "Dana Reyes",
		},
		{
			name:       "client with comments",
			signerType: vo.SignerClient,
			signerName: "M. Okafor",
			comments:   "Lobby looks great",
		},
		{
			name:       "invalid signer type",
			signerType: vo.SignerType("janitor"),
			signerName: "Dana Reyes",
			wantErr:    "invalid signer type",
		},
		{
			name:       "blank name",
			signerType: vo.SignerClient,
			signerName: "   ",
			wantErr:    "signer name is required",
		},
		{
			name:       "comments too long",
			signerType: vo.SignerClient,
			signerName: "M. Okafor",
			comments:   strings.Repeat("x", 2001),
			wantErr:    "comments exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signoff, err := NewSignoff(100, tt.signerType, tt.signerName, "Facility Manager", tt.comments)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.signerType, signoff.SignerType())
			assert.Equal(t, strings.TrimSpace(tt.signerName), signoff.SignerName())
			assert.False(t, signoff.SignedAt().IsZero())
		})
	}
}

func TestNewSignoff_RequiresInspection(t *testing.T) {
	_, err := NewSignoff(0, vo.SignerClient, "M. Okafor", "", "")
	assert.Error(t, err)
}

func TestNewActivity(t *testing.T) {
	actor := uint(20)

	activity, err := NewActivity(100, vo.ActivityCompleted, &actor, map[string]any{
		"overall_score":  67,
		"overall_rating": "fair",
		"failed_items":   1,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.ActivityCompleted, activity.Action())
	require.NotNil(t, activity.ActorID())
	assert.Equal(t, actor, *activity.ActorID())
	assert.Equal(t, 67, activity.Metadata()["overall_score"])
}

func TestNewActivity_SystemActor(t *testing.T) {
	activity, err := NewActivity(100, vo.ActivityCreated, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, activity.ActorID())
	assert.NotNil(t, activity.Metadata())
}

func TestNewActivity_InvalidAction(t *testing.T) {
	_, err := NewActivity(100, vo.ActivityAction("edited"), nil, nil)
	assert.Error(t, err)
}

func TestActivity_MetadataIsCopied(t *testing.T) {
	activity, err := NewActivity(100, vo.ActivityCanceled, nil, map[string]any{"reason": "weather"})
	require.NoError(t, err)

	meta := activity.Metadata()
	meta["reason"] = "tampered"
	assert.Equal(t, "weather", activity.Metadata()["reason"])
}
