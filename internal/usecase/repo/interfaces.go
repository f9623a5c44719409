// Package repo описывает контракты хранилищ
package repo

import (
	"context"
	"errors"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
)

// ErrNotFound означает что сущность не найдена
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists означает что сущность уже существует
var ErrAlreadyExists = errors.New("already exists")

// AthleteRepository описывает работу с реестром спортсменов.
// List обязан возвращать спортсменов в порядке регистрации.
type AthleteRepository interface {
	Save(ctx context.Context, athlete *entity.Athlete) error
	GetByName(ctx context.Context, name string) (*entity.Athlete, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*entity.Athlete, error)
}
