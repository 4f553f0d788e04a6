// Package mocks provides in-memory repositories for service and controller tests.
package mocks

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

// store keeps records of one entity keyed by id. T must be a struct with an
// int64 ID field and db tags matching the column names used by updates.
type store[T any] struct {
	mu     sync.Mutex
	entity string
	nextID int64
	rows   map[int64]*T
	// unique returns a key that must not repeat across rows, or "" for none
	unique func(*T) string
}

func newStore[T any](entity string, unique func(*T) string) *store[T] {
	return &store[T]{entity: entity, rows: map[int64]*T{}, unique: unique}
}

func (s *store[T]) notFound() error {
	return apperrors.NewResourceNotFoundError("%s not found", s.entity)
}

func (s *store[T]) conflicts(record *T, skipID int64) bool {
	if s.unique == nil {
		return false
	}
	key := s.unique(record)
	if key == "" {
		return false
	}
	for id, row := range s.rows {
		if id != skipID && s.unique(row) == key {
			return true
		}
	}
	return false
}

func (s *store[T]) insert(record *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts(record, 0) {
		return nil, apperrors.NewConflictError("%s already exists", s.entity)
	}
	s.nextID++
	row := *record
	v := reflect.ValueOf(&row).Elem()
	v.FieldByName("ID").SetInt(s.nextID)
	now := time.Now()
	for _, name := range []string{"CreatedAt", "UpdatedAt"} {
		if f := v.FieldByName(name); f.IsValid() {
			f.Set(reflect.ValueOf(now))
		}
	}
	s.rows[s.nextID] = &row
	out := row
	return &out, nil
}

func (s *store[T]) get(id int64) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, s.notFound()
	}
	out := *row
	return &out, nil
}

// find returns the first row matching keep, ordered by id
func (s *store[T]) find(keep func(*T) bool) (*T, error) {
	rows := s.all(keep)
	if len(rows) == 0 {
		return nil, s.notFound()
	}
	return rows[0], nil
}

// all returns copies of rows matching keep, ordered by id
func (s *store[T]) all(keep func(*T) bool) []*T {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*T{}
	for _, id := range ids {
		row := s.rows[id]
		if keep == nil || keep(row) {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out
}

func (s *store[T]) update(id int64, fields map[string]interface{}) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, s.notFound()
	}
	next := *row
	if err := applyFields(&next, fields); err != nil {
		return nil, err
	}
	if s.conflicts(&next, id) {
		return nil, apperrors.NewConflictError("%s already exists", s.entity)
	}
	if f := reflect.ValueOf(&next).Elem().FieldByName("UpdatedAt"); f.IsValid() && len(fields) > 0 {
		f.Set(reflect.ValueOf(time.Now()))
	}
	s.rows[id] = &next
	out := next
	return &out, nil
}

func (s *store[T]) remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return s.notFound()
	}
	delete(s.rows, id)
	return nil
}

// mutate runs fn on the stored row under the lock
func (s *store[T]) mutate(id int64, fn func(*T)) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, s.notFound()
	}
	fn(row)
	out := *row
	return &out, nil
}

func (s *store[T]) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// applyFields sets struct fields by their db tag, the way an UPDATE would
func applyFields(record interface{}, fields map[string]interface{}) error {
	v := reflect.ValueOf(record).Elem()
	t := v.Type()

	byTag := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		byTag[t.Field(i).Tag.Get("db")] = i
	}

	for column, value := range fields {
		idx, ok := byTag[column]
		if !ok {
			return fmt.Errorf("unknown column %q", column)
		}
		field := v.Field(idx)

		if value == nil {
			field.Set(reflect.Zero(field.Type()))
			continue
		}
		val := reflect.ValueOf(value)
		switch {
		case val.Type().AssignableTo(field.Type()):
			field.Set(val)
		case field.Kind() == reflect.Ptr && val.Type().AssignableTo(field.Type().Elem()):
			ptr := reflect.New(field.Type().Elem())
			ptr.Elem().Set(val)
			field.Set(ptr)
		default:
			return fmt.Errorf("column %q: cannot assign %s to %s", column, val.Type(), field.Type())
		}
	}
	return nil
}
