package voyager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voycli/voycli/pkg/voyager"
)

func TestURN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		urn      voyager.URN
		wantID   string
		wantType string
	}{
		{
			name:     "profile urn",
			urn:      "urn:li:fsd_profile:ACoAAAbc123",
			wantID:   "ACoAAAbc123",
			wantType: "fsd_profile",
		},
		{
			name:     "activity urn",
			urn:      "urn:li:activity:7123456789",
			wantID:   "7123456789",
			wantType: "activity",
		},
		{
			name:     "composite update urn keeps parentheses",
			urn:      "urn:li:fs_updateV2:(urn:li:activity:7123,MAIN_FEED,EMPTY,DEFAULT,false)",
			wantID:   "(urn:li:activity:7123,MAIN_FEED,EMPTY,DEFAULT,false)",
			wantType: "fs_updateV2",
		},
		{
			name:     "bare identifier",
			urn:      "2-YmFyZQ==",
			wantID:   "2-YmFyZQ==",
			wantType: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.wantID, testCase.urn.ID())
			assert.Equal(t, testCase.wantType, testCase.urn.Type())
		})
	}
}

func TestURN_Escaped(t *testing.T) {
	t.Parallel()

	urn := voyager.URN("urn:li:activity:7123456789")
	assert.Equal(t, "urn%3Ali%3Aactivity%3A7123456789", urn.Escaped())
	assert.True(t, voyager.URN("").IsEmpty())
	assert.False(t, urn.IsEmpty())
}
