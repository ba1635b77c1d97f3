package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/appcast-comb/app/config"
	"github.com/lysyi3m/appcast-comb/app/parser"
)

func NewHandler(appcastConfig *config.AppcastConfig, appcast string) *Handler {
	return &Handler{
		appcastConfig: appcastConfig,
		parser:        parser.NewParser(),
		appcast:       appcast,
	}
}

func (h *Handler) GetAppcast(c *gin.Context) {
	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.Header("X-Appcast-App", h.appcastConfig.App.Name)
	c.String(http.StatusOK, h.appcast)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"app":       h.appcastConfig.App.Name,
	}

	if metadata, items, err := h.parser.Run([]byte(h.appcast)); err == nil {
		health["title"] = metadata.Title
		health["items"] = len(items)
	} else {
		slog.Error("Appcast failed to re-parse", "error", err)
		health["error"] = err.Error()
		c.JSON(http.StatusInternalServerError, health)
		return
	}

	c.Header("X-Appcast-Bytes", strconv.Itoa(len(h.appcast)))
	c.JSON(http.StatusOK, health)
}
