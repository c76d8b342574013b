package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to a JPEG or PNG image",
	}
}

func textProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image tools
		{
			Name:        "plate_read",
			Description: "Detect text in a vehicle photo and return every plausible plate reading with corrected text, region, confidence, bounding polygon and label layout. Coordinates refer to the image after it is resized for detection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "plate_annotate",
			Description: "Read the plates in an image and write a copy with each plate outlined and labelled with its region and text. Returns the written PNG path and the readings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for the annotated PNG (created if missing). The file is named after the input image.",
					},
				},
				"required": []string{"path", "output_dir"},
			},
		},

		// Text tools
		{
			Name:        "plate_correct",
			Description: "Apply the OCR misread corrections (e.g. ICL→1CL, ZG→26) to a plate string and report whether the result is long enough to count as a plate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": textProperty("Raw OCR text"),
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "plate_resolve_region",
			Description: "Resolve the issuing region from the first two characters of a plate string. Returns \"Unknown\" when the prefix matches no region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": textProperty("Plate text"),
					"correct": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply corrections before resolving. Default false",
						"default":     false,
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "plate_regions",
			Description: "List the region code table in declaration order, or the regions sharing one code.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code": textProperty("Optional two-letter code to filter by"),
				},
			},
		},

		// Engine
		{
			Name:        "cache_clear",
			Description: "Drop decoded photos from the server's image cache so changed files are read again. Clears one path when given, otherwise the whole cache. Returns how many photos were dropped and how many remain.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": textProperty("Optional image path exactly as passed to plate_read"),
				},
			},
		},
		{
			Name:        "ocr_info",
			Description: "Report which text detector the server uses and whether it is available.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
