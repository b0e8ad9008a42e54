package router

import "github.com/gin-gonic/gin"

// Registry collects modules and mounts them either at the site root (HTML
// pages) or under /api (JSON endpoints).
type Registry struct {
	Engine   *gin.Engine
	API      *gin.RouterGroup
	pages    []Module
	modules  []Module
	notFound []gin.HandlerFunc
}

func NewRegistry(engine *gin.Engine) *Registry {
	api := engine.Group("/api")
	return &Registry{Engine: engine, API: api}
}

// AddPages registers a module on the root group.
func (r *Registry) AddPages(mod Module) {
	r.pages = append(r.pages, mod)
}

// Add registers a module under /api.
func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// NoRoute sets the handlers for unmatched paths.
func (r *Registry) NoRoute(h ...gin.HandlerFunc) {
	r.notFound = h
}

func (r *Registry) RegisterAll() {
	for _, m := range r.pages {
		m.Register(&r.Engine.RouterGroup)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
	if len(r.notFound) > 0 {
		r.Engine.NoRoute(r.notFound...)
	}
}
