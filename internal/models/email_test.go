package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drafts are inserted with an empty tracking id and only receive one
// at send time. The uniqueness constraint must therefore be partial:
// a plain unique index would reject the second draft ever created,
// since Postgres treats '' = '' as equal.
func TestGeneratedEmailTrackingIDUniquenessExcludesDrafts(t *testing.T) {
	field, ok := reflect.TypeOf(GeneratedEmail{}).FieldByName("TrackingID")
	require.True(t, ok)

	tag := field.Tag.Get("gorm")
	assert.Contains(t, tag, "unique")
	assert.Contains(t, tag, "where:tracking_id <> ''")
	assert.NotContains(t, tag, "uniqueIndex")
}

func TestGeneratedEmailIsSent(t *testing.T) {
	draft := &GeneratedEmail{Status: EmailStatusDraft}
	sent := &GeneratedEmail{Status: EmailStatusSent}

	assert.False(t, draft.IsSent())
	assert.True(t, sent.IsSent())
}
