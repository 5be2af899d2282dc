package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageAttempt(t *testing.T) {
	assert.Equal(t, "CampaignCreated-attempt", StageCampaignCreated.Attempt())
	assert.Equal(t, "AdSetCreated-attempt", StageAdSetCreated.Attempt())
	assert.Equal(t, "CreativeCreated-attempt", StageCreativeCreated.Attempt())
	assert.Equal(t, "AdCreated-attempt", StageAdCreated.Attempt())
}

func TestBuildResult_PartialIDs(t *testing.T) {
	empty := &BuildResult{}
	assert.Empty(t, empty.PartialIDs())

	partial := &BuildResult{
		CampaignID: "120210000001",
		AdSetID:    "120210000002",
	}
	assert.Equal(t, map[string]string{
		"campaign_id": "120210000001",
		"ad_set_id":   "120210000002",
	}, partial.PartialIDs())

	complete := &BuildResult{
		CampaignID: "1",
		AdSetID:    "2",
		CreativeID: "3",
		AdID:       "4",
	}
	assert.Len(t, complete.PartialIDs(), 4)
}
