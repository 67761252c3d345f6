// Package ecs is a small hand-rolled entity-component store: generational
// entity handles, sparse-set component storages, an ordered system list, and
// a per-tick event board. Everything runs on one goroutine; nothing in here
// is safe for concurrent use.
package ecs

import "strconv"

// Entity is a generational handle. A handle stays valid until the entity is
// destroyed; after that IsAlive reports false even if the id is recycled.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}

// entityStore tracks entity generations and free ids.
type entityStore struct {
	nextID int
	gen    []int
	free   []int
}

func (s *entityStore) create() Entity {
	if s == nil {
		return Entity{}
	}
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	if id > len(s.gen) {
		s.gen = append(s.gen, 0)
	}
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	idx := e.ID - 1
	if s.gen[idx] != e.Gen {
		return false
	}
	s.gen[idx]++
	s.free = append(s.free, e.ID)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.gen[e.ID-1] == e.Gen
}

// entity resolves a live handle from a raw storage id.
func (s *entityStore) entity(id int) Entity {
	if s == nil || id <= 0 || id > len(s.gen) {
		return Entity{}
	}
	return Entity{ID: id, Gen: s.gen[id-1]}
}
