package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketKey(t *testing.T) {
	assert.Equal(t, "auth:203.0.113.7", BucketKey(ClassAuth, "203.0.113.7"))
	assert.Equal(t, "cart:2001_db8__1", BucketKey(ClassCart, "2001:db8::1"))
}
