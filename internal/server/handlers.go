package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ironsheep/plate-reader/internal/imaging"
	"github.com/ironsheep/plate-reader/internal/ocr"
	"github.com/ironsheep/plate-reader/internal/plate"
)

var (
	errNoDetector  = errors.New("no text detector configured")
	errNoAnnotator = errors.New("annotation is not configured")
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "plate_read", "plate_correct").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("Tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "plate_read":
		return s.handlePlateRead(ctx, args)
	case "plate_annotate":
		return s.handlePlateAnnotate(ctx, args)
	case "plate_correct":
		return s.handlePlateCorrect(args)
	case "plate_resolve_region":
		return s.handlePlateResolveRegion(args)
	case "plate_regions":
		return s.handlePlateRegions(args)
	case "cache_clear":
		return s.handleCacheClear(args)
	case "ocr_info":
		return ocr.GetOCRInfo(s.backend), nil
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Handlers ===

type plateReadArgs struct {
	Path string `json:"path"`
}

// PlateReadResult is the plate_read response.
type PlateReadResult struct {
	Image      string         `json:"image"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Detections int            `json:"detections"`
	Results    []plate.Result `json:"results"`
}

func (s *Server) handlePlateRead(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a plateReadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	res, _, err := s.readPlates(ctx, a.Path)
	return res, err
}

// readPlates runs one cached image through detection and the pipeline. It
// also returns the resized color image the coordinates refer to.
func (s *Server) readPlates(ctx context.Context, path string) (*PlateReadResult, imaging.Prepared, error) {
	if s.detector == nil {
		return nil, imaging.Prepared{}, errNoDetector
	}
	if path == "" {
		return nil, imaging.Prepared{}, errors.New("path is required")
	}

	img, err := s.cache.Load(path)
	if err != nil {
		return nil, imaging.Prepared{}, err
	}
	prepared := imaging.Preprocess(img, s.resizeWidth)

	detections, err := s.detector.Detect(ctx, prepared.Gray)
	if err != nil {
		return nil, imaging.Prepared{}, err
	}

	imageID := filepath.Base(path)
	results := s.pipeline.Process(imageID, detections)
	if results == nil {
		results = []plate.Result{}
	}

	bounds := prepared.Color.Bounds()
	return &PlateReadResult{
		Image:      imageID,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Detections: len(detections),
		Results:    results,
	}, prepared, nil
}

type plateAnnotateArgs struct {
	Path      string `json:"path"`
	OutputDir string `json:"output_dir"`
}

// PlateAnnotateResult is the plate_annotate response.
type PlateAnnotateResult struct {
	OutputPath string `json:"output_path"`
	PlateReadResult
}

func (s *Server) handlePlateAnnotate(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a plateAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.annotator == nil {
		return nil, errNoAnnotator
	}
	if a.OutputDir == "" {
		return nil, errors.New("output_dir is required")
	}

	read, prepared, err := s.readPlates(ctx, a.Path)
	if err != nil {
		return nil, err
	}

	out := s.annotator.Render(prepared.Color, read.Results)
	saved, err := imaging.SaveAnnotated(out, a.OutputDir, read.Image)
	if err != nil {
		return nil, err
	}
	return &PlateAnnotateResult{OutputPath: saved, PlateReadResult: *read}, nil
}

// === Text Handlers ===

type plateTextArgs struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

func (s *Server) handlePlateCorrect(args json.RawMessage) (interface{}, error) {
	var a plateTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	corrected := s.pipeline.Correct(a.Text)
	return map[string]interface{}{
		"input":     a.Text,
		"corrected": corrected,
		"admitted":  s.pipeline.Admit(corrected),
	}, nil
}

func (s *Server) handlePlateResolveRegion(args json.RawMessage) (interface{}, error) {
	var a plateTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	text := a.Text
	if a.Correct {
		text = s.pipeline.Correct(text)
	}
	region := s.pipeline.Resolve(text)
	result := map[string]interface{}{
		"text":   text,
		"region": region,
	}
	if code, ok := s.pipeline.Regions().Code(region); ok {
		result["code"] = code
	}
	return result, nil
}

type plateRegionsArgs struct {
	Code string `json:"code"`
}

func (s *Server) handlePlateRegions(args json.RawMessage) (interface{}, error) {
	var a plateRegionsArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	table := s.pipeline.Regions()
	if a.Code == "" {
		return map[string]interface{}{
			"regions": table.Entries(),
		}, nil
	}

	names := table.Names(a.Code)
	if names == nil {
		names = []string{}
	}
	return map[string]interface{}{
		"code":    a.Code,
		"regions": names,
	}, nil
}

// === Engine Handlers ===

type cacheClearArgs struct {
	Path string `json:"path"`
}

// handleCacheClear drops one photo, or every photo when no path is given,
// so a file rewritten on disk is decoded again by the next read.
func (s *Server) handleCacheClear(args json.RawMessage) (interface{}, error) {
	var a cacheClearArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	cleared := 0
	if a.Path == "" {
		cleared = s.cache.Clear()
	} else if s.cache.Evict(a.Path) {
		cleared = 1
	}
	s.log.Debug().Str("path", a.Path).Int("cleared", cleared).Msg("Image cache cleared")

	return map[string]interface{}{
		"cleared": cleared,
		"cached":  s.cache.Len(),
	}, nil
}
