package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaticHandler serves front-end assets from a single directory, refusing
// any path that resolves outside it.
type StaticHandler struct {
	root   string
	logger *zap.Logger
}

// NewStaticHandler creates a StaticHandler rooted at assetsDir.
func NewStaticHandler(assetsDir string, logger *zap.Logger) (*StaticHandler, error) {
	root, err := filepath.Abs(assetsDir)
	if err != nil {
		return nil, err
	}
	return &StaticHandler{root: root, logger: logger}, nil
}

// Index serves index.html when present, otherwise a plain notice that the
// backend is up.
func (h *StaticHandler) Index(c *gin.Context) {
	index := filepath.Join(h.root, "index.html")
	if info, err := os.Stat(index); err == nil && !info.IsDir() {
		c.File(index)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, "<h3>Backend is running.</h3>")
}

// Asset serves a local file by relative URL path. Registered as the NoRoute
// handler, so it answers every request no other route claimed.
func (h *StaticHandler) Asset(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	target, ok := h.resolve(c.Request.URL.Path)
	if !ok {
		h.logger.Debug("asset not served", zap.String("path", c.Request.URL.Path))
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	c.File(target)
}

// resolve maps a URL path onto the assets root. It rejects anything that
// escapes the root after cleaning, and anything that is not a regular file.
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	abs, err := filepath.Abs(filepath.Join(h.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", false
	}

	if abs != h.root && !strings.HasPrefix(abs, h.root+string(os.PathSeparator)) {
		return "", false
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", false
	}

	return abs, true
}
