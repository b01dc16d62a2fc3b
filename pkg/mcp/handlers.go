package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"toc-filter/pkg/toc"
)

// baseOptions assembles the configured default TOC options; tool
// parameters (and marker options inside the document) override them.
func (s *Server) baseOptions() toc.Options {
	cfg := s.cfg.AppConfig
	return toc.Options{
		MinLevel:       cfg.MinLevel,
		MaxLevel:       cfg.MaxLevel,
		ChapterNumbers: cfg.ChapterNumbers,
		Prefix:         cfg.Prefix,
		EmitHeadingID:  cfg.EmitHeadingID,
	}
}

// optionsFromRequest overlays tool parameters onto the configured defaults
func (s *Server) optionsFromRequest(request mcp.CallToolRequest) toc.Options {
	opts := s.baseOptions()
	opts.MinLevel = request.GetInt("minlevel", opts.MinLevel)
	opts.MaxLevel = request.GetInt("maxlevel", opts.MaxLevel)
	opts.ChapterNumbers = request.GetBool("chapternumbers", opts.ChapterNumbers)
	opts.Prefix = request.GetString("prefix", opts.Prefix)
	opts.EmitHeadingID = request.GetBool("emit_heading_id", opts.EmitHeadingID)
	return opts
}

// requestLog returns a logger carrying a fresh request ID for correlation
func (s *Server) requestLog(tool string) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"tool":       tool,
		"request_id": uuid.New().String(),
	})
}

// handleInsertTOC handles the insert_toc tool
func (s *Server) handleInsertTOC(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document := request.GetString("document", "")
	if document == "" {
		return mcp.NewToolResultError("document parameter is required"), nil
	}

	reqLog := s.requestLog("insert_toc")
	opts := s.optionsFromRequest(request)

	transformed := toc.Insert(document, opts)
	headings := toc.Headings(document, opts)

	reqLog.Debugf("Transformed document (%d bytes in, %d bytes out, %d headings)",
		len(document), len(transformed), len(headings))

	result := map[string]interface{}{
		"document":      transformed,
		"changed":       transformed != document,
		"heading_count": len(headings),
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleListHeadings handles the list_headings tool
func (s *Server) handleListHeadings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document := request.GetString("document", "")
	if document == "" {
		return mcp.NewToolResultError("document parameter is required"), nil
	}

	reqLog := s.requestLog("list_headings")
	opts := s.optionsFromRequest(request)

	headings := toc.Headings(document, opts)
	outline := make([]map[string]interface{}, 0, len(headings))
	for _, h := range headings {
		outline = append(outline, map[string]interface{}{
			"level":     h.Level,
			"text":      h.RawInner,
			"display":   h.Display,
			"anchor_id": h.AnchorID,
		})
	}

	reqLog.Debugf("Extracted %d headings", len(headings))

	result := map[string]interface{}{
		"headings": outline,
		"total":    len(outline),
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleSlugify handles the slugify tool
func (s *Server) handleSlugify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	result := map[string]interface{}{
		"text": text,
		"slug": toc.Slugify(text),
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// formatJSON formats data as an indented JSON string
func formatJSON(data map[string]interface{}) string {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}", err.Error())
	}
	return string(b)
}
