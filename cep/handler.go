package cep

import (
	"net/http"

	"consulta-cep/cep/application"
	"consulta-cep/cep/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Service application.Service
	// Stats é opcional; sem ele GET /stats responde 404.
	Stats domain.StatsReader

	KeyFn              KeyFunc
	KeyHeader          string
	TrustXForwardedFor bool
}

// NewRouter monta as rotas da página de consulta.
func NewRouter(opts Options) *gin.Engine {
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(clientKey(opts.KeyFn))
	r.Use(accessLog())
	r.SetHTMLTemplate(loadTemplate())

	h := handler{svc: opts.Service, stats: opts.Stats}
	r.GET("/", h.form)
	r.POST("/", h.consult)
	r.GET("/healthz", h.healthz)
	r.GET("/stats", h.totals)

	return r
}

type handler struct {
	svc   application.Service
	stats domain.StatsReader
}

func (h handler) form(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, page{})
}

func (h handler) consult(c *gin.Context) {
	out := h.svc.Consult(c.Request.Context(), c.PostForm("cep"), c.GetString(clientKeyCtx))
	c.HTML(http.StatusOK, pageTemplate, pageFor(out))
}

func (h handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h handler) totals(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stats disabled"})
		return
	}
	totals, err := h.stats.Totals(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("failed to read cep stats")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}
