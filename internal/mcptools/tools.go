// Package mcptools exposes template search and recommendations as MCP tools over stdio.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/template-finder/internal/catalog"
	logging "github.com/jonathan/template-finder/internal/logger"
	"github.com/jonathan/template-finder/internal/ranking"
	"github.com/jonathan/template-finder/internal/recommend"
	"github.com/jonathan/template-finder/internal/suggest"
	"github.com/jonathan/template-finder/internal/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Tool names.
const (
	ToolSearchTemplates    = "search_templates"
	ToolRecommendTemplates = "recommend_templates"
	ToolSearchSuggestions  = "search_suggestions"
	ToolPopularTerms       = "popular_search_terms"
	ToolQuizQuestions      = "quiz_questions"
)

const serverName = "template-finder"

// Tools serves MCP tool calls from a catalog source.
type Tools struct {
	catalog catalog.Source
	logger  *zap.Logger
}

// New creates the tool set.
func New(source catalog.Source, logger *zap.Logger) *Tools {
	return &Tools{catalog: source, logger: logging.OrNop(logger)}
}

// NewServer creates an MCP server with every tool registered.
func NewServer(source catalog.Source, logger *zap.Logger, version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version, server.WithToolCapabilities(false))
	s.AddTools(New(source, logger).Definitions()...)
	return s
}

// ServeStdio runs the MCP server on stdin and stdout until stdin closes.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

type searchArgs struct {
	Query    string `mapstructure:"query"`
	Category string `mapstructure:"category"`
}

type suggestionArgs struct {
	Partial string `mapstructure:"partial"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func enumProp(dimension string) map[string]interface{} {
	q, _ := recommend.QuestionFor(dimension)
	values := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		values = append(values, o.Value)
	}
	return map[string]interface{}{"type": "string", "description": q.Title, "enum": values}
}

// Definitions returns the tools with their handlers.
func (t *Tools) Definitions() []server.ServerTool {
	search := mcp.NewTool(ToolSearchTemplates,
		mcp.WithDescription("Rank resume templates by relevance to a free-text query such as a job title or industry"),
	)
	search.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"query":    stringProp("Job title, industry or keywords; empty lists every template"),
			"category": stringProp("Only return templates in this category (optional, \"All\" disables filtering)"),
		},
		Required: []string{"query"},
	}

	quizProps := make(map[string]interface{}, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		quizProps[dim] = enumProp(dim)
	}
	recommendTool := mcp.NewTool(ToolRecommendTemplates,
		mcp.WithDescription("Recommend up to six resume templates from the five quiz answers"),
	)
	recommendTool.InputSchema = mcp.ToolInputSchema{
		Type:       "object",
		Properties: quizProps,
		Required:   append([]string(nil), types.Dimensions...),
	}

	suggestions := mcp.NewTool(ToolSearchSuggestions,
		mcp.WithDescription("Autocomplete search terms for a partial query of at least two characters"),
	)
	suggestions.InputSchema = mcp.ToolInputSchema{
		Type:       "object",
		Properties: map[string]interface{}{"partial": stringProp("The partial search text")},
		Required:   []string{"partial"},
	}

	popular := mcp.NewTool(ToolPopularTerms,
		mcp.WithDescription("List popular search terms derived from the catalog"),
	)
	popular.InputSchema = mcp.ToolInputSchema{Type: "object", Properties: map[string]interface{}{}}

	quiz := mcp.NewTool(ToolQuizQuestions,
		mcp.WithDescription("List the recommendation quiz questions and their allowed answers"),
	)
	quiz.InputSchema = mcp.ToolInputSchema{Type: "object", Properties: map[string]interface{}{}}

	return []server.ServerTool{
		{Tool: search, Handler: t.handleSearch},
		{Tool: recommendTool, Handler: t.handleRecommend},
		{Tool: suggestions, Handler: t.handleSuggestions},
		{Tool: popular, Handler: t.handlePopular},
		{Tool: quiz, Handler: t.handleQuiz},
	}
}

// decodeArgs decodes tool arguments into out, rejecting unknown fields.
func decodeArgs(request mcp.CallToolRequest, out interface{}) error {
	args := request.GetArguments()
	if args == nil {
		args = map[string]interface{}{}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "mapstructure",
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(args)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (t *Tools) load(ctx context.Context, tool string) ([]types.TemplateRecord, *mcp.CallToolResult) {
	records, err := t.catalog.Load(ctx)
	if err != nil {
		t.logger.Error("catalog load failed", zap.String("tool", tool), zap.Error(err))
		return nil, mcp.NewToolResultError(fmt.Sprintf("Failed to load template catalog: %v", err))
	}
	return records, nil
}

func (t *Tools) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args searchArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	records, errResult := t.load(ctx, ToolSearchTemplates)
	if errResult != nil {
		return errResult, nil
	}

	results := catalog.FilterCategory(ranking.SearchTemplates(records, args.Query), args.Category)
	t.logger.Debug("search tool", zap.String("query", args.Query), zap.Int("results", len(results)))
	return jsonResult(map[string]interface{}{
		"query":   args.Query,
		"results": results,
		"count":   len(results),
	})
}

func (t *Tools) handleRecommend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var answers types.QuizAnswers
	if err := decodeArgs(request, &answers); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if err := answers.Validate(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid quiz answers: %v", err)), nil
	}

	records, errResult := t.load(ctx, ToolRecommendTemplates)
	if errResult != nil {
		return errResult, nil
	}

	recs := recommend.ScoreRecommendations(records, answers)
	return jsonResult(map[string]interface{}{
		"recommendations": recs,
		"count":           len(recs),
	})
}

func (t *Tools) handleSuggestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args suggestionArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	records, errResult := t.load(ctx, ToolSearchSuggestions)
	if errResult != nil {
		return errResult, nil
	}

	return jsonResult(map[string]interface{}{
		"suggestions": suggest.SearchSuggestions(records, args.Partial),
	})
}

func (t *Tools) handlePopular(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, errResult := t.load(ctx, ToolPopularTerms)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(map[string]interface{}{"terms": suggest.PopularSearchTerms(records)})
}

func (t *Tools) handleQuiz(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{"questions": recommend.Questions()})
}
