package service

import "sync"

// ProjectLocks serializes mutating operations per project ID so that two
// concurrent calls on the same project cannot both pass the count/duplicate
// checks. Operations on different projects proceed in parallel. One arena is
// shared by the project and place services.
type ProjectLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewProjectLocks() *ProjectLocks {
	return &ProjectLocks{locks: make(map[int64]*sync.Mutex)}
}

// Lock acquires the mutex for projectID and returns its unlock func.
// Entries are kept for the process lifetime; the map grows with the number
// of distinct projects touched, which is bounded and small.
func (l *ProjectLocks) Lock(projectID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[projectID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[projectID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
