package stub

import (
	"encoding/json"
	"sync"
)

// row — запись как она живёт на проводе: JSON-объект без привязки к типу.
// Заглушке важна форма контракта, а не доменная модель.
type row = map[string]interface{}

// store — одна коллекция ресурса: выдача в порядке вставки, целочисленные
// идентификаторы, назначаемые при создании.
type store struct {
	mu     sync.Mutex
	idKey  string
	nextID int64
	order  []int64
	rows   map[int64]row
}

func newStore(idKey string) *store {
	return &store{
		idKey:  idKey,
		nextID: 1,
		rows:   make(map[int64]row),
	}
}

func (s *store) list() []row {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]row, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rows[id])
	}
	return out
}

func (s *store) create(r row) row {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	r[s.idKey] = id
	s.rows[id] = r
	s.order = append(s.order, id)
	return r
}

// update заменяет присланные поля, сохраняя идентификатор.
func (s *store) update(id int64, r row) (row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.rows[id]
	if !ok {
		return nil, false
	}
	for k, v := range r {
		if k == s.idKey {
			continue
		}
		current[k] = v
	}
	return current, true
}

func (s *store) delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false
	}
	delete(s.rows, id)
	kept := s.order[:0]
	for _, existing := range s.order {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	s.order = kept
	return true
}

func (s *store) get(id int64) (row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	return r, ok
}

// seed вставляет запись из готовой структуры, прогоняя её через JSON,
// чтобы форма совпала с тем, что увидит клиент.
func (s *store) seed(v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var r row
	if err := json.Unmarshal(payload, &r); err != nil {
		panic(err)
	}
	s.create(r)
}
