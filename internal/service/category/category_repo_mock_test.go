package category

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Category, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Category, error)
	CreateFunc  func(ctx context.Context, name string, color, description *string) (*domain.Category, error)
	UpdateFunc  func(ctx context.Context, id int64, u domain.CategoryUpdate) (*domain.Category, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx         context.Context
			Name        string
			Color       *string
			Description *string
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			U   domain.CategoryUpdate
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryRepoMock.ListFunc: method is nil but categoryRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *categoryRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Create(ctx context.Context, name string, color, description *string) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		Color       *string
		Description *string
	}{Ctx: ctx, Name: name, Color: color, Description: description}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name, color, description)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx         context.Context
	Name        string
	Color       *string
	Description *string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Update(ctx context.Context, id int64, u domain.CategoryUpdate) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryRepoMock.UpdateFunc: method is nil but categoryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		U   domain.CategoryUpdate
	}{Ctx: ctx, ID: id, U: u}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, u)
}

func (mock *categoryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	U   domain.CategoryUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("categoryRepoMock.DeleteFunc: method is nil but categoryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *categoryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
