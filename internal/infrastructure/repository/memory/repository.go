// Package memory предоставляет реализацию реестра спортсменов в памяти.
// Состояние живёт до завершения процесса, долговременного хранилища нет.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/usecase/repo"
)

var _ repo.AthleteRepository = (*AthleteRepository)(nil)

// AthleteRepository реализует repo.AthleteRepository в памяти
// с сохранением порядка регистрации. Мьютекс сериализует доступ
// из конкурентных HTTP-запросов, сам движок блокировок не держит.
type AthleteRepository struct {
	mu       sync.RWMutex
	athletes map[string]*entity.Athlete
	order    []string
}

// NewAthleteRepository создает новый пустой AthleteRepository
func NewAthleteRepository() *AthleteRepository {
	return &AthleteRepository{
		athletes: make(map[string]*entity.Athlete),
	}
}

// Save сохраняет нового спортсмена
func (r *AthleteRepository) Save(_ context.Context, athlete *entity.Athlete) error {
	if athlete == nil {
		return errors.New("athlete is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.athletes[athlete.Name]; exists {
		return repo.ErrAlreadyExists
	}
	aCopy := *athlete
	r.athletes[athlete.Name] = &aCopy
	r.order = append(r.order, athlete.Name)
	return nil
}

// GetByName возвращает спортсмена по точному имени
func (r *AthleteRepository) GetByName(_ context.Context, name string) (*entity.Athlete, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.athletes[name]
	if !ok {
		return nil, repo.ErrNotFound
	}
	aCopy := *a
	return &aCopy, nil
}

// Delete удаляет спортсмена по точному имени
func (r *AthleteRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.athletes[name]; !ok {
		return repo.ErrNotFound
	}
	delete(r.athletes, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List возвращает копии всех спортсменов в порядке регистрации
func (r *AthleteRepository) List(_ context.Context) ([]*entity.Athlete, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Athlete, 0, len(r.order))
	for _, name := range r.order {
		aCopy := *r.athletes[name]
		result = append(result, &aCopy)
	}
	return result, nil
}
