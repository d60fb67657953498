// Package web is the small web kit every controller in this service is
// written against. It wraps gin so handlers can return errors and share a
// context carrying request-scoped values.
package web

import (
	"github.com/gin-gonic/gin"
)

// Handler is the signature all application handlers implement.
type Handler func(c *Context) error

// Middleware runs before/after a Handler in the chain.
type Middleware func(Handler) Handler

// App is the entrypoint for the application, embedding the gin engine so the
// router can still reach raw gin routes (static files, websockets, docs).
type App struct {
	*gin.Engine
}

func NewApp() *App {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	return &App{Engine: engine}
}

func wrapMiddleware(handler Handler, mw []Middleware) Handler {
	// Wrap in reverse order so the first middleware listed runs first.
	for i := len(mw) - 1; i >= 0; i-- {
		if m := mw[i]; m != nil {
			handler = m(handler)
		}
	}

	return handler
}

func (a *App) handle(method, path string, handler Handler, mw ...Middleware) {
	h := wrapMiddleware(handler, mw)

	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := NewContext(c)
		if err := h(ctx); err != nil {
			// Handlers respond to their own errors; anything reaching here
			// slipped past RespondError.
			_ = ctx.RespondError(err)
		}
	})
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle("GET", path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle("POST", path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle("PUT", path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle("PATCH", path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle("DELETE", path, handler, mw...)
}

func (a *App) Head(path string, handler Handler, mw ...Middleware) {
	a.handle("HEAD", path, handler, mw...)
}
