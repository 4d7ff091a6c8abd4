package adaptor

import (
	"context"
	"net/http"
	"time"

	"movie-graph/pkg/utils"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store  Pinger
	driver string
	log    *zap.Logger
}

func NewHealthHandler(store Pinger, driver string, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		driver: driver,
		log:    log.With(zap.String("handler", "health")),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("Storage ping failed", zap.Error(err), zap.String("driver", h.driver))
		utils.ResponseUnavailable(w, "Storage unavailable")
		return
	}

	utils.ResponseSuccess(w, "OK", map[string]string{"storage": h.driver})
}
