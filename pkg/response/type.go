package response

// Resp is the envelope used by the operational endpoints.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// DetailResp is the error body of the classification API.
type DetailResp struct {
	Detail string `json:"detail"`
}
