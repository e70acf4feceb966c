package dictionary

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Word, error)
	ListFunc    func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	CreateFunc  func(ctx context.Context, f domain.WordFields) (*domain.Word, error)
	UpdateFunc  func(ctx context.Context, id int64, u domain.WordUpdate) (*domain.Word, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
		Create []struct {
			Ctx context.Context
			F   domain.WordFields
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			U   domain.WordUpdate
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
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

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *wordRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordRepoMock) Create(ctx context.Context, f domain.WordFields) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.WordFields
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   domain.WordFields
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Update(ctx context.Context, id int64, u domain.WordUpdate) (*domain.Word, error) {
	if mock.UpdateFunc == nil {
		panic("wordRepoMock.UpdateFunc: method is nil but wordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		U   domain.WordUpdate
	}{Ctx: ctx, ID: id, U: u}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, u)
}

func (mock *wordRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	U   domain.WordUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
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

func (mock *wordRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
