package api

import (
	"context"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/nbs-ai/agentic-rag/internal/crew"
	"github.com/nbs-ai/agentic-rag/internal/database"
	"github.com/nbs-ai/agentic-rag/internal/middleware"
	"github.com/rs/zerolog/log"
)

// Pipeline is the query entrypoint the handler delegates to.
type Pipeline interface {
	Kickoff(ctx context.Context, query string) (*crew.TaskOutput, error)
}

// DocumentLister exposes the ingested document catalog.
type DocumentLister interface {
	GetAllDocs(ctx context.Context) ([]database.Document, error)
}

type Handler struct {
	pipeline Pipeline
	docs     DocumentLister
}

func NewHandler(pipeline Pipeline, docs DocumentLister) *Handler {
	return &Handler{
		pipeline: pipeline,
		docs:     docs,
	}
}

// Query handles POST /api/v1/query
func (h *Handler) Query(req *restful.Request, resp *restful.Response) {
	var queryRequest QueryRequest

	if err := req.ReadEntity(&queryRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := queryRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	log.Info().
		Str("query", queryRequest.Query).
		Msg("Process Query")

	ctx := req.Request.Context()

	output, err := h.pipeline.Kickoff(ctx, queryRequest.Query)
	if err != nil {
		log.Error().Err(err).Msg("Failed to run query pipeline")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, QueryResponse{
		RunID:    output.RunID,
		Answer:   output.Answer,
		Sources:  output.Sources,
		Redacted: output.Redacted,
		Attempts: output.Attempts,
	})
}

// Documents handles GET /api/v1/documents
func (h *Handler) Documents(req *restful.Request, resp *restful.Response) {
	ctx := req.Request.Context()

	docs, err := h.docs.GetAllDocs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list documents")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	response := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		response = append(response, DocumentResponse{
			Id:         doc.Id,
			Title:      doc.Title,
			SourcePath: doc.SourcePath,
		})
	}

	resp.WriteHeaderAndEntity(http.StatusOK, response)
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
