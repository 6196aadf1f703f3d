package dto

type QueryRequest struct {
	Query string `json:"query"`
}

type QueryResponse struct {
	Query      string     `json:"query"`
	Intent     IntentType `json:"intent"`
	Confidence float64    `json:"confidence"`
	ToolUsed   *string    `json:"tool_used"`
	ToolOutput ToolResult `json:"tool_output"`
	Response   string     `json:"response"`
}

type StatusResponse struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	AvailableTools []string `json:"available_tools"`
}
