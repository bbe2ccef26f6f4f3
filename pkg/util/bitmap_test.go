package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnd(t *testing.T) {
	a := AcquireBitmap(1, 2, 3)
	bm := BMAnd(a, AcquireBitmap(3, 4, 5), AcquireBitmap(3, 5, 6, 7))
	assert.Equal(t, uint64(1), bm.GetCardinality(), "TestAnd failed")
	assert.Equal(t, uint64(3), a.GetCardinality(), "TestAnd failed")
	assert.Equal(t, uint64(0), BMAnd().GetCardinality(), "TestAnd failed")
}

func TestOr(t *testing.T) {
	bm := BMOr(AcquireBitmap(1, 2, 3), AcquireBitmap(3, 4, 5), AcquireBitmap(5, 6, 7))
	assert.Equal(t, uint64(7), bm.GetCardinality(), "TestOr failed")
	assert.Equal(t, uint64(0), BMOr().GetCardinality(), "TestOr failed")
}

func TestAndnot(t *testing.T) {
	a := AcquireBitmap(1, 2, 3)
	bm := BMAndnot(a, AcquireBitmap(3, 4, 5), AcquireBitmap(2))
	assert.Equal(t, []uint32{1}, bm.ToArray(), "TestAndnot failed")
	assert.Equal(t, uint64(3), a.GetCardinality(), "TestAndnot failed")
}
