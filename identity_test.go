package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetainIncrementsRefCount(t *testing.T) {
	x := FromInt32(7)
	require.EqualValues(t, 1, RefCount(x))
	Retain(x)
	assert.EqualValues(t, 2, RefCount(x))
	Retain(x)
	assert.EqualValues(t, 3, RefCount(x))
}

func TestReleaseNilsHandleWhileOtherReferencesRemain(t *testing.T) {
	x := FromInt32(7)
	Retain(x)
	Retain(x) // refcount now 3

	handle := x
	Release(&handle)
	assert.Nil(t, handle)
}

func TestNRetainsNPlusOneReleasesZeroesHandle(t *testing.T) {
	const n = 5
	x := FromInt32(99)
	handles := make([]*BigInt, n+1)
	handles[0] = x
	for i := 1; i <= n; i++ {
		handles[i] = Retain(x)
	}
	assert.EqualValues(t, n+1, RefCount(x))

	for i := 0; i < n; i++ {
		Release(&handles[i])
		assert.Nil(t, handles[i])
	}
	assert.EqualValues(t, 1, RefCount(x))

	Release(&handles[n])
	assert.Nil(t, handles[n])
	assert.EqualValues(t, 0, RefCount(x))
}

func TestReleaseOnNilHandleIsNoOp(t *testing.T) {
	var h *BigInt
	assert.NotPanics(t, func() { Release(&h) })
	Release(nil)
}

func TestCopyHasItsOwnRefCount(t *testing.T) {
	x := FromInt32(5)
	Retain(x)
	y := Copy(x)
	assert.EqualValues(t, 1, RefCount(y))
	assert.EqualValues(t, 2, RefCount(x))
}
