package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container накапливает мидлвари huma для очередной группы операций
type Container struct {
	huma.Middlewares
}

// NewContainer создает контейнер, сразу добавляя переданные мидлвари
func NewContainer(mws ...func(ctx huma.Context, next func(huma.Context))) *Container {
	c := &Container{Middlewares: make(huma.Middlewares, 0, len(mws))}
	for _, mw := range mws {
		c.Add(mw)
	}
	return c
}

// Add добавляет одну мидлварь в контейнер
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) *Container {
	mc.Middlewares = append(mc.Middlewares, middleware)
	return mc
}

// GetAllAndClear возвращает все мидлвари и очищает внутренний список
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = nil
	return result
}
