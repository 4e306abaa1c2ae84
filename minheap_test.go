package minheap

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, h *MinHeap) []int {
	t.Helper()
	res := []int{}
	for h.Len() > 0 {
		v, err := h.Remove()
		require.NoError(t, err)
		require.True(t, h.Valid(), "堆序被破坏: %v", h.Dump())
		res = append(res, v)
	}
	return res
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -100} {
		h, err := New(c)
		assert.Nil(t, h)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "capacity %d", c)
	}
}

func TestNewFillsSentinel(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 3, h.Cap())
	assert.Equal(t, []int{Sentinel, Sentinel, Sentinel}, h.Dump())
	assert.Empty(t, h.Snapshot())
}

func TestRoundTrip(t *testing.T) {
	h, err := New(5)
	require.NoError(t, err)

	for _, v := range []int{6, 3, 5, 2, 4} {
		require.NoError(t, h.Add(v))
		require.True(t, h.Valid())
	}
	assert.Equal(t, 2, h.Snapshot()[0])
	assert.Equal(t, []int{2, 3, 4, 5, 6}, drain(t, h))
}

// 先删除再插入，检查删除只在 currSize 范围内调整
func TestAddAfterRemove(t *testing.T) {
	h, err := New(5)
	require.NoError(t, err)
	for _, v := range []int{5, 1, 4, 2, 3} {
		require.NoError(t, h.Add(v))
	}

	v, err := h.Remove()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = h.Remove()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{Sentinel, Sentinel}, h.Dump()[3:])

	require.NoError(t, h.Add(0))
	assert.True(t, h.Valid())
	assert.Equal(t, 4, h.Len())

	v, err = h.Remove()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.Equal(t, []int{3, 4, 5}, drain(t, h))
}

func TestHeapFull(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)
	for _, v := range []int{3, 1, 2} {
		require.NoError(t, h.Add(v))
	}
	before := h.Dump()

	err = h.Add(0)
	assert.True(t, errors.Is(err, ErrHeapFull))
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, before, h.Dump())
}

func TestEmptyHeap(t *testing.T) {
	h, err := New(2)
	require.NoError(t, err)

	_, err = h.Remove()
	assert.True(t, errors.Is(err, ErrEmptyHeap))

	require.NoError(t, h.Add(Sentinel))
	v, err := h.Remove()
	require.NoError(t, err)
	assert.Equal(t, Sentinel, v)

	_, err = h.Remove()
	assert.True(t, errors.Is(err, ErrEmptyHeap))
	assert.Equal(t, 0, h.Len())
}

// 右孩子比左孩子小时必须选右孩子
func TestHeapifyPicksSmallerChild(t *testing.T) {
	h := &MinHeap{data: []int{9, 5, 1}, currSize: 3, maxSize: 3}
	h.heapify(0)
	assert.Equal(t, []int{1, 5, 9}, h.data)

	h = &MinHeap{data: []int{9, 1, 5}, currSize: 3, maxSize: 3}
	h.heapify(0)
	assert.Equal(t, []int{1, 9, 5}, h.data)
}

func TestHeapifyIgnoresUnoccupied(t *testing.T) {
	h := &MinHeap{data: []int{7, 8, -1}, currSize: 2, maxSize: 3}
	h.heapify(0)
	assert.Equal(t, []int{7, 8, -1}, h.data)
}

func TestSwapSelf(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)
	require.NoError(t, h.Add(42))
	require.NoError(t, h.Add(7))

	before := h.Dump()
	for i := 0; i < h.Cap(); i++ {
		h.swap(i, i)
	}
	assert.Equal(t, before, h.Dump())
}

func TestIndexHelpers(t *testing.T) {
	assert.Equal(t, 0, parent(1))
	assert.Equal(t, 0, parent(2))
	assert.Equal(t, 1, parent(3))
	assert.Equal(t, 2, parent(6))
	assert.Equal(t, 1, leftChild(0))
	assert.Equal(t, 2, rightChild(0))
	assert.Equal(t, 5, leftChild(2))
	assert.Equal(t, 6, rightChild(2))
}

func TestString(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)
	require.NoError(t, h.Add(4))
	require.NoError(t, h.Add(1))

	assert.Equal(t, "1 4 9223372036854775807", h.String())
}

func TestRandomOps(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	h, err := New(64)
	require.NoError(t, err)
	var model []int

	for i := 0; i < 5000; i++ {
		if r.Intn(3) > 0 {
			v := r.Intn(200) - 100
			err := h.Add(v)
			if len(model) == h.Cap() {
				require.True(t, errors.Is(err, ErrHeapFull))
			} else {
				require.NoError(t, err)
				model = append(model, v)
			}
		} else {
			v, err := h.Remove()
			if len(model) == 0 {
				require.True(t, errors.Is(err, ErrEmptyHeap))
			} else {
				require.NoError(t, err)
				sort.Ints(model)
				require.Equal(t, model[0], v)
				model = model[1:]
			}
		}
		require.Equal(t, len(model), h.Len())
		require.True(t, h.Valid(), "堆序被破坏: %v", h.Snapshot())
	}

	sort.Ints(model)
	got := drain(t, h)
	require.Len(t, got, len(model))
	for i := range model {
		assert.Equal(t, model[i], got[i])
	}
}
