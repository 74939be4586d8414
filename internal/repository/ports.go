package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	GetPage(ctx context.Context, offset, limit int, entities any) error
	UpdateBy(ctx context.Context, column string, value any, model any, fields map[string]any) (int64, error)
	DeleteBy(ctx context.Context, column string, value any, model any) (int64, error)
}
