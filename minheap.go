package minheap

import (
	"math"
	"strconv"
	"strings"

	"github.com/wwqdrh/minheap/internal/errors"
)

// Sentinel 标记未被占用的槽位，只用于展示，不参与判空
const Sentinel = math.MaxInt

var (
	ErrInvalidArgument = errors.ErrInvalidArgument
	ErrHeapFull        = errors.ErrHeapFull
	ErrEmptyHeap       = errors.ErrEmptyHeap
)

type (
	// heapOps 是 MinHeap 与 SyncHeap 共同的方法集
	heapOps interface {
		Add(value int) error
		Remove() (int, error)
		Len() int
		Cap() int
		Snapshot() []int
		Dump() []int
		Valid() bool
	}

	// MinHeap 固定容量的小顶堆，非并发安全
	MinHeap struct {
		data     []int
		currSize int
		maxSize  int
	}
)

func New(capacity int) (*MinHeap, error) {
	if capacity <= 0 {
		return nil, errors.NewCode(errors.ErrInvalidArgument, "capacity must be positive, got "+strconv.Itoa(capacity))
	}

	data := make([]int, capacity)
	for i := range data {
		data[i] = Sentinel
	}
	return &MinHeap{
		data:     data,
		currSize: 0,
		maxSize:  capacity,
	}, nil
}

// Add 插入元素并上浮，堆满时返回 ErrHeapFull 且不修改状态
func (h *MinHeap) Add(value int) error {
	if h.currSize == h.maxSize {
		return errors.NewCode(errors.ErrHeapFull, "heap is full, capacity "+strconv.Itoa(h.maxSize))
	}

	i := h.currSize
	h.data[i] = value
	h.currSize++
	h.siftUp(i)
	return nil
}

// Remove 弹出最小值，堆为空时返回 ErrEmptyHeap
func (h *MinHeap) Remove() (int, error) {
	if h.currSize == 0 {
		return 0, errors.NewCode(errors.ErrEmptyHeap, "heap is empty")
	}

	res := h.data[0]
	last := h.currSize - 1
	h.swap(0, last)
	h.data[last] = Sentinel
	h.currSize--
	h.heapify(0)

	return res, nil
}

func (h *MinHeap) Len() int { return h.currSize }

func (h *MinHeap) Cap() int { return h.maxSize }

// Snapshot 按数组顺序返回已占用部分的拷贝
func (h *MinHeap) Snapshot() []int {
	res := make([]int, h.currSize)
	copy(res, h.data[:h.currSize])
	return res
}

// Dump 返回包含空槽位的完整底层数组拷贝
func (h *MinHeap) Dump() []int {
	res := make([]int, len(h.data))
	copy(res, h.data)
	return res
}

func (h *MinHeap) String() string {
	var b strings.Builder
	for i, v := range h.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Valid 检查 [0, currSize) 上的堆序
func (h *MinHeap) Valid() bool {
	for i := 1; i < h.currSize; i++ {
		if h.data[i] < h.data[parent(i)] {
			return false
		}
	}
	return true
}

func (h *MinHeap) siftUp(i int) {
	for i != 0 && h.data[i] < h.data[parent(i)] {
		h.swap(parent(i), i)
		i = parent(i)
	}
}

func (h *MinHeap) heapify(index int) {
	smallest := index
	left, right := leftChild(index), rightChild(index)

	if left < h.currSize && h.data[left] < h.data[smallest] {
		smallest = left
	}
	if right < h.currSize && h.data[right] < h.data[smallest] {
		smallest = right
	}

	if smallest != index {
		h.swap(smallest, index)
		h.heapify(smallest)
	}
}

func (h *MinHeap) swap(i, j int) {
	tmp := h.data[i]
	h.data[i] = h.data[j]
	h.data[j] = tmp
}

func parent(i int) int { return (i - 1) / 2 }

func leftChild(i int) int { return 2*i + 1 }

func rightChild(i int) int { return 2*i + 2 }
