package examples

import (
	"context"
	"sync"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		Generate []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, prompt string) (string, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, prompt)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
