package minheap

import "sync"

// SyncHeap 用读写锁包装 MinHeap，供多个协程共享
type SyncHeap struct {
	mu sync.RWMutex
	h  *MinHeap
}

func NewSync(capacity int) (*SyncHeap, error) {
	h, err := New(capacity)
	if err != nil {
		return nil, err
	}
	return &SyncHeap{h: h}, nil
}

func (s *SyncHeap) Add(value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.h.Add(value)
}

func (s *SyncHeap) Remove() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.h.Remove()
}

// AddLen 插入并返回插入后的大小，两者在同一把锁下完成
func (s *SyncHeap) AddLen(value int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.h.Add(value)
	return s.h.Len(), err
}

// RemoveLen 弹出最小值并返回弹出后的大小
func (s *SyncHeap) RemoveLen() (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.h.Remove()
	return v, s.h.Len(), err
}

func (s *SyncHeap) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.h.Len()
}

func (s *SyncHeap) Cap() int {
	return s.h.Cap()
}

func (s *SyncHeap) Snapshot() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.h.Snapshot()
}

func (s *SyncHeap) Dump() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.h.Dump()
}

func (s *SyncHeap) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.h.Valid()
}

// Stat 在同一把读锁下取出大小、快照与堆序检查结果
func (s *SyncHeap) Stat() (size int, snapshot []int, valid bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.h.Len(), s.h.Snapshot(), s.h.Valid()
}

var (
	_ heapOps = (*MinHeap)(nil)
	_ heapOps = (*SyncHeap)(nil)
)
