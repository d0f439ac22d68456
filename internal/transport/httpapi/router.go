package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/murkotick/storefront-service/internal/transport/graphql/storefront"
)

const maxBodyBytes = 1 << 20

// Executor runs a decoded GraphQL request.
type Executor interface {
	Do(ctx context.Context, req storefront.Request) (*graphql.Result, storefront.Outcome)
}

// Paths served by the endpoint.
var Paths = []string{"/", "/graphql"}

// NewRouter builds the storefront HTTP endpoint.
func NewRouter(exec Executor, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(cors.New(CORSConfig()))

	h := &handler{exec: exec, log: logger}
	for _, p := range Paths {
		r.POST(p, h.execute)
		r.GET(p, h.info)
		r.OPTIONS(p, h.preflight)
	}
	return r
}

// CORSConfig allows any origin.
func CORSConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}
}

type handler struct {
	exec Executor
	log  *slog.Logger
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: errorDetail{Message: msg, Type: "bad_request"}})
}

func (h *handler) execute(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errorBody{Error: errorDetail{Message: "Request body too large", Type: "bad_request"}})
			return
		}
		badRequest(c, "Could not read request body")
		return
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		badRequest(c, "Request body is empty")
		return
	}

	var req storefront.Request
	if err := json.Unmarshal(body, &req); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		badRequest(c, "Missing 'query' in request body")
		return
	}

	res, out := h.exec.Do(c.Request.Context(), req)
	status := http.StatusOK
	if out.Unavailable {
		status = http.StatusServiceUnavailable
		h.log.WarnContext(c.Request.Context(), "graphql request hit an unavailable database")
	}
	c.JSON(status, res)
}

func (h *handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "GraphQL endpoint is running",
		"endpoint": "/graphql",
		"example": gin.H{
			"query": "{ categories { name } }",
		},
	})
}

func (h *handler) preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
