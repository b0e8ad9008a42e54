package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/gryffintwin/internal/container"
	"github.com/oksasatya/gryffintwin/internal/interface/middleware"
	"github.com/oksasatya/gryffintwin/pkg/validation"
	"github.com/oksasatya/gryffintwin/web"
)

// NewEngine builds the gin engine with global middleware, views and all
// modules registered.
func NewEngine(ctr *container.Container) (*gin.Engine, error) {
	cfg := ctr.Config
	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(ctr.Logger))
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	tpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tpl)
	r.StaticFS("/static", web.Static())

	r.Use(middleware.Sessions(ctr.Sessions, ctr.Logger))

	reg := NewRegistry(r)
	InitModules(reg, ctr)
	reg.RegisterAll()
	return r, nil
}
