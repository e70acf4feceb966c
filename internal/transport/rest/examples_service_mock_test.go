package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-backend/internal/domain"
	"github.com/heartmarshall/vocab-backend/internal/service/examples"
)

var _ examplesService = &examplesServiceMock{}

type examplesServiceMock struct {
	GenerateFunc func(ctx context.Context, input examples.GenerateInput) ([]domain.GeneratedExample, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input examples.GenerateInput
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *examplesServiceMock) Generate(ctx context.Context, input examples.GenerateInput) ([]domain.GeneratedExample, error) {
	if mock.GenerateFunc == nil {
		panic("examplesServiceMock.GenerateFunc: method is nil but examplesService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input examples.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *examplesServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input examples.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
