package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestActiveByEventFilter(t *testing.T) {
	filter := activeByEventFilter("patent.expired")

	assert.Equal(t, true, filter["active"])

	// 訂閱事件清單留空（= 全部事件）的訂閱也要被撈到
	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Contains(t, or, bson.M{"events": "patent.expired"})
	assert.Contains(t, or, bson.M{"events": bson.M{"$size": 0}})
	assert.Contains(t, or, bson.M{"events": nil})
}
