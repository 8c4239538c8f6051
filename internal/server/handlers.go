package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/template-finder/internal/catalog"
	"github.com/jonathan/template-finder/internal/export"
	"github.com/jonathan/template-finder/internal/ranking"
	"github.com/jonathan/template-finder/internal/recommend"
	"github.com/jonathan/template-finder/internal/suggest"
	"github.com/jonathan/template-finder/internal/taxonomy"
	"github.com/jonathan/template-finder/internal/types"
	"go.uber.org/zap"
)

const (
	maxQueryLength = 200
	maxBodyBytes   = 64 << 10
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// TemplatesResponse is the response for GET /templates
type TemplatesResponse struct {
	Templates []types.TemplateRecord `json:"templates"`
	Count     int                    `json:"count"`
}

// CategoriesResponse is the response for GET /templates/categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// SearchResponse is the response for GET /search
type SearchResponse struct {
	Query    string               `json:"query"`
	Category string               `json:"category,omitempty"`
	Results  []types.SearchResult `json:"results"`
	Count    int                  `json:"count"`
}

// SuggestionsResponse is the response for GET /search/suggestions
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// PopularResponse is the response for GET /search/popular
type PopularResponse struct {
	Terms []string `json:"terms"`
}

// QuizResponse is the response for GET /quiz
type QuizResponse struct {
	Questions []recommend.Question `json:"questions"`
}

// RecommendationsResponse is the response for POST /recommendations
type RecommendationsResponse struct {
	Recommendations []types.Recommendation `json:"recommendations"`
	Count           int                    `json:"count"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loadCatalog loads a snapshot of the catalog for one request.
func (s *Server) loadCatalog(r *http.Request) ([]types.TemplateRecord, error) {
	records, err := s.catalog.Load(r.Context())
	if err != nil {
		return nil, &ErrCatalogUnavailable{Cause: err}
	}
	return records, nil
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	records, err := s.loadCatalog(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	records = catalog.FilterCategory(records, r.URL.Query().Get("category"))
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{Templates: records, Count: len(records)})
}

// handleCategories lists the catalog categories, led by the All pseudo-category.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	records, err := s.loadCatalog(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	categories := append([]string{catalog.AllCategories}, catalog.Categories(records)...)
	s.jsonResponse(w, http.StatusOK, CategoriesResponse{Categories: categories})
}

// searchQuery reads and checks the q and category parameters.
func searchQuery(r *http.Request) (query, category string, err error) {
	query = r.URL.Query().Get("q")
	if utf8.RuneCountInString(query) > maxQueryLength {
		return "", "", &ErrValidation{Field: "q", Message: "must be at most 200 characters"}
	}
	return query, r.URL.Query().Get("category"), nil
}

// search ranks the catalog for query and applies the category filter.
func (s *Server) search(r *http.Request, query, category string) ([]types.SearchResult, error) {
	records, err := s.loadCatalog(r)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) != "" {
		res := taxonomy.Resolve(query)
		s.logger.Debug("query resolved",
			zap.String("query", query),
			zap.String("outcome", string(res.Outcome)),
			zap.String("key", res.Key),
		)
	}

	return catalog.FilterCategory(ranking.SearchTemplates(records, query), category), nil
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, category, err := searchQuery(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	results, err := s.search(r, query, category)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, SearchResponse{
		Query:    query,
		Category: category,
		Results:  results,
		Count:    len(results),
	})
}

func (s *Server) handleExportSearch(w http.ResponseWriter, r *http.Request) {
	query, category, err := searchQuery(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	results, err := s.search(r, query, category)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	s.xlsxResponse(w, r, "search-results.xlsx", func(out io.Writer) error {
		return export.WriteSearchResults(out, results)
	})
}

func (s *Server) handleExportTemplates(w http.ResponseWriter, r *http.Request) {
	records, err := s.loadCatalog(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	records = catalog.FilterCategory(records, r.URL.Query().Get("category"))
	s.xlsxResponse(w, r, "templates.xlsx", func(out io.Writer) error {
		return export.WriteCatalog(out, records)
	})
}

// xlsxResponse renders a workbook into memory first so a failure still gets a JSON error.
func (s *Server) xlsxResponse(w http.ResponseWriter, r *http.Request, filename string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxMediaType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error("failed to write workbook", zap.Error(err))
	}
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	records, err := s.loadCatalog(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	suggestions := suggest.SearchSuggestions(records, r.URL.Query().Get("q"))
	s.jsonResponse(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	records, err := s.loadCatalog(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, PopularResponse{Terms: suggest.PopularSearchTerms(records)})
}

func (s *Server) handleQuiz(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, QuizResponse{Questions: recommend.Questions()})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var answers types.QuizAnswers
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&answers); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, r, err)
			return
		}
		s.errorResponse(w, r, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	if err := answers.Validate(); err != nil {
		s.errorResponse(w, r, fromValidator(err))
		return
	}

	records, err := s.loadCatalog(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	recs := recommend.ScoreRecommendations(records, answers)
	s.jsonResponse(w, http.StatusOK, RecommendationsResponse{Recommendations: recs, Count: len(recs)})
}
