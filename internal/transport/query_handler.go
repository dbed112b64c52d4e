// Package transport exposes the batch query operations over HTTP.
package transport

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goodnatureofminers/evmquery/internal/evm/export"
	"github.com/goodnatureofminers/evmquery/internal/evm/model"
	"github.com/goodnatureofminers/evmquery/internal/evm/service/batch"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// maxBodySize bounds the raw operator input accepted per request.
const maxBodySize = 4 << 20

type (
	// Engine runs a batch for raw operator input.
	Engine interface {
		Query(ctx context.Context, raw string, kind model.Kind, client batch.Client) model.ResultSet
	}

	queryRequest struct {
		Input string `json:"input"`
	}
	errorResponse struct {
		Error string `json:"error"`
	}
)

// QueryHandler serves the contract bytecode and transaction receipt batch queries.
type QueryHandler struct {
	engine Engine
	client batch.Client
	logger *zap.Logger
}

// NewQueryHandler returns a QueryHandler using client for every batch.
func NewQueryHandler(engine Engine, client batch.Client, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		engine: engine,
		client: client,
		logger: logger,
	}
}

// Register mounts the query route on the gateway mux. The kind path segment accepts
// contracts or transactions as well as the kind names.
func (h *QueryHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodPost, "/v1/{kind}/query", h.handle); err != nil {
		return fmt.Errorf("register query route: %w", err)
	}
	return nil
}

func (h *QueryHandler) handle(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	kind, err := model.ParseKind(pathParams["kind"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	raw, err := readInput(r)
	if err != nil {
		h.logger.Warn("bad query request", zap.String("kind", string(kind)), zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rs := h.engine.Query(r.Context(), raw, kind, h.client)

	w.Header().Set("Content-Type", "application/json")
	if download, _ := strconv.ParseBool(r.URL.Query().Get("download")); download {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": kind.FileName()}))
	}
	w.WriteHeader(http.StatusOK)
	if err := export.Write(w, rs); err != nil {
		h.logger.Error("write query response", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// readInput returns the raw operator text from a plain text body or a {"input": "..."} JSON body.
func readInput(r *http.Request) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodySize {
		return "", fmt.Errorf("body exceeds %d bytes", maxBodySize)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.EqualFold(mediaType, "application/json") {
		return string(body), nil
	}
	var req queryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", fmt.Errorf("decode json body: %w", err)
	}
	return req.Input, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
