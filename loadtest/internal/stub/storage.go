package stub

import (
	"sync"
)

type userData struct {
	Target        float64
	Consumed      float64
	Contributions []contributionResponse
	BusyIntervals []intervalResponse
	PatternHours  []int
}

// SeedStorage holds per-run stub data: seeded users and every reminder task
// the core enqueued during the run.
type SeedStorage struct {
	mu    sync.RWMutex
	users map[string]map[string]*userData // runID -> userID -> data
	tasks map[string][]ReminderTask       // runID -> enqueued tasks
}

func NewSeedStorage() *SeedStorage {
	return &SeedStorage{
		users: make(map[string]map[string]*userData),
		tasks: make(map[string][]ReminderTask),
	}
}

func (s *SeedStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, runID)
	delete(s.tasks, runID)
}

func (s *SeedStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]map[string]*userData)
	s.tasks = make(map[string][]ReminderTask)
}

func (s *SeedStorage) SeedUser(runID string, seed UserSeed, intervals []intervalResponse, contributions []contributionResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.users[runID] == nil {
		s.users[runID] = make(map[string]*userData)
	}
	s.users[runID][seed.UserID] = &userData{
		Target:        seed.Target,
		Consumed:      seed.Consumed,
		Contributions: contributions,
		BusyIntervals: intervals,
		PatternHours:  seed.PatternHours,
	}
}

// GetUser returns the seeded data for a user, or a zero-value default so
// unseeded users still produce a well-formed response.
func (s *SeedStorage) GetUser(runID, userID string) *userData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if users, ok := s.users[runID]; ok {
		if data, ok := users[userID]; ok {
			return data
		}
	}
	return &userData{Target: 100}
}

func (s *SeedStorage) BusyIntervalsForDay(runID, userID, day string) []intervalResponse {
	data := s.GetUser(runID, userID)

	intervals := make([]intervalResponse, 0, len(data.BusyIntervals))
	for _, interval := range data.BusyIntervals {
		if interval.Start.Format("2006-01-02") == day {
			intervals = append(intervals, interval)
		}
	}
	return intervals
}

func (s *SeedStorage) AddTask(runID string, task ReminderTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[runID] = append(s.tasks[runID], task)
}

func (s *SeedStorage) Tasks(runID string) []ReminderTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]ReminderTask, len(s.tasks[runID]))
	copy(tasks, s.tasks[runID])
	return tasks
}
