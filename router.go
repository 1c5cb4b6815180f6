package easysteam

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"io"
	"reflect"
	"runtime"
	"sync"
)

//go:generate mockgen -destination mock/dispatcher_mock.go -package mock . Dispatcher

// Dispatcher receives translated callbacks and fans them out to interested listeners.
type Dispatcher interface {
	// Dispatch hands cb over to the listeners.
	// Returns error when any listener failed.
	Dispatch(cb Callback) error
}

var _ Dispatcher = &Router{}

// HandlerFunc is the function type for callback handlers.
type HandlerFunc func(cb Callback) error

// MiddlewareFunc is the function type for middlewares.
// A common pattern is like:
//
// 	var md MiddlewareFunc = func(next HandlerFunc) HandlerFunc {
// 		return func(cb Callback) error {
// 			return next(cb)
// 		}
// 	}
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

// Router is a Dispatcher routing callbacks to the handlers registered for their kind.
// Several handlers can be registered for the same kind, they're called in registration order.
type Router struct {
	mu sync.RWMutex

	// handlers maps callback kind to its registered handlers.
	handlers map[CallbackKind][]*route

	// globalMiddlewares will be called before the route middlewares.
	globalMiddlewares []MiddlewareFunc

	notFoundHandler HandlerFunc
}

type route struct {
	id          string // UUID
	kind        CallbackKind
	handler     HandlerFunc
	middlewares []MiddlewareFunc
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[CallbackKind][]*route),
	}
}

// Register adds handler h for callbacks of kind, wrapped by middlewares m.
// Returns the id of the registration, to be used with Unregister.
func (r *Router) Register(kind CallbackKind, h HandlerFunc, m ...MiddlewareFunc) string {
	ms := make([]MiddlewareFunc, 0, len(m))
	for _, mm := range m {
		if mm != nil {
			ms = append(ms, mm)
		}
	}
	rt := &route{
		id:          uuid.NewString(),
		kind:        kind,
		handler:     h,
		middlewares: ms,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = append(r.handlers[kind], rt)
	return rt.id
}

// Unregister removes the registration with id.
// Returns false if no such registration exists.
func (r *Router) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for kind, routes := range r.handlers {
		for i, rt := range routes {
			if rt.id != id {
				continue
			}
			rest := make([]*route, 0, len(routes)-1)
			rest = append(rest, routes[:i]...)
			rest = append(rest, routes[i+1:]...)
			if len(rest) == 0 {
				delete(r.handlers, kind)
			} else {
				r.handlers[kind] = rest
			}
			return true
		}
	}
	return false
}

// Use registers global middlewares, called for every handler.
func (r *Router) Use(m ...MiddlewareFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, mm := range m {
		if mm != nil {
			r.globalMiddlewares = append(r.globalMiddlewares, mm)
		}
	}
}

// NotFound sets the handler called for callbacks without registered handlers.
func (r *Router) NotFound(h HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFoundHandler = h
}

// Dispatch implements the Dispatcher Dispatch method.
// Every handler is called even if a previous one failed or panicked;
// the returned error joins all the failures.
func (r *Router) Dispatch(cb Callback) error {
	if cb == nil {
		return fmt.Errorf("cannot dispatch nil callback")
	}

	r.mu.RLock()
	routes := r.handlers[cb.Kind()]
	globals := r.globalMiddlewares
	notFound := r.notFoundHandler
	r.mu.RUnlock()

	if len(routes) == 0 {
		if notFound == nil {
			Log.Tracef("no handler for callback %s", cb.Kind())
			return nil
		}
		return r.call(wrapHandlers(notFound, globals), cb)
	}

	var errs []error
	for _, rt := range routes {
		mws := make([]MiddlewareFunc, 0, len(globals)+len(rt.middlewares))
		mws = append(mws, globals...)
		mws = append(mws, rt.middlewares...) // append to global ones
		if err := r.call(wrapHandlers(rt.handler, mws), cb); err != nil {
			errs = append(errs, fmt.Errorf("handler %s: %w", rt.id, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Router) call(h HandlerFunc, cb Callback) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			Log.Errorf("handler panics on callback %s: %v", cb.Kind(), rec)
			err = fmt.Errorf("handler panics: %v", rec)
		}
	}()
	return h(cb)
}

// wrapHandlers wraps handler and middlewares into a right order call stack.
// Makes something like:
// 	var wrapped HandlerFunc = m1(m2(m3(handle)))
func wrapHandlers(handler HandlerFunc, middles []MiddlewareFunc) (wrapped HandlerFunc) {
	if handler == nil {
		handler = nilHandler
	}
	wrapped = handler
	for i := len(middles) - 1; i >= 0; i-- {
		m := middles[i]
		wrapped = m(wrapped)
	}
	return wrapped
}

var nilHandler HandlerFunc = func(cb Callback) error {
	return nil
}

// PrintHandlers writes the registered handlers as a table to w.
func (r *Router) PrintHandlers(w io.Writer) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Callback Kind", "Handler", "Registration ID"})
	table.SetAutoFormatHeaders(false)
	for kind := CallbackKindConnected; kind <= CallbackKindLeaderboardEntries; kind++ {
		for _, rt := range r.handlers[kind] {
			table.Append([]string{kind.String(), handlerName(rt.handler), rt.id})
		}
	}
	table.Render()
}

func handlerName(h HandlerFunc) string {
	if h == nil {
		return "<nil>"
	}
	return runtime.FuncForPC(reflect.ValueOf(h).Pointer()).Name()
}
