package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-backend/internal/domain"
	"github.com/heartmarshall/vocab-backend/internal/service/category"
)

var _ categoryService = &categoryServiceMock{}

type categoryServiceMock struct {
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	GetCategoryFunc    func(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategoryFunc func(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	UpdateCategoryFunc func(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id int64) error

	calls struct {
		ListCategories []struct {
			Ctx context.Context
		}
		GetCategory []struct {
			Ctx context.Context
			Id  int64
		}
		CreateCategory []struct {
			Ctx   context.Context
			Input category.CreateCategoryInput
		}
		UpdateCategory []struct {
			Ctx   context.Context
			Input category.UpdateCategoryInput
		}
		DeleteCategory []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockListCategories sync.RWMutex
	lockGetCategory    sync.RWMutex
	lockCreateCategory sync.RWMutex
	lockUpdateCategory sync.RWMutex
	lockDeleteCategory sync.RWMutex
}

func (mock *categoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("categoryServiceMock.ListCategoriesFunc: method is nil but categoryService.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *categoryServiceMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *categoryServiceMock) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	if mock.GetCategoryFunc == nil {
		panic("categoryServiceMock.GetCategoryFunc: method is nil but categoryService.GetCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetCategory.Lock()
	mock.calls.GetCategory = append(mock.calls.GetCategory, callInfo)
	mock.lockGetCategory.Unlock()
	return mock.GetCategoryFunc(ctx, id)
}

func (mock *categoryServiceMock) GetCategoryCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetCategory.RLock()
	calls := mock.calls.GetCategory
	mock.lockGetCategory.RUnlock()
	return calls
}

func (mock *categoryServiceMock) CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("categoryServiceMock.CreateCategoryFunc: method is nil but categoryService.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.CreateCategoryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, input)
}

func (mock *categoryServiceMock) CreateCategoryCalls() []struct {
	Ctx   context.Context
	Input category.CreateCategoryInput
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *categoryServiceMock) UpdateCategory(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error) {
	if mock.UpdateCategoryFunc == nil {
		panic("categoryServiceMock.UpdateCategoryFunc: method is nil but categoryService.UpdateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.UpdateCategoryInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCategory.Lock()
	mock.calls.UpdateCategory = append(mock.calls.UpdateCategory, callInfo)
	mock.lockUpdateCategory.Unlock()
	return mock.UpdateCategoryFunc(ctx, input)
}

func (mock *categoryServiceMock) UpdateCategoryCalls() []struct {
	Ctx   context.Context
	Input category.UpdateCategoryInput
} {
	mock.lockUpdateCategory.RLock()
	calls := mock.calls.UpdateCategory
	mock.lockUpdateCategory.RUnlock()
	return calls
}

func (mock *categoryServiceMock) DeleteCategory(ctx context.Context, id int64) error {
	if mock.DeleteCategoryFunc == nil {
		panic("categoryServiceMock.DeleteCategoryFunc: method is nil but categoryService.DeleteCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDeleteCategory.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, callInfo)
	mock.lockDeleteCategory.Unlock()
	return mock.DeleteCategoryFunc(ctx, id)
}

func (mock *categoryServiceMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteCategory.RLock()
	calls := mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}
