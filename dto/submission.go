// file: dto/submission.go
package dto

// SubmitFlagReq 提交 Flag 接口的请求体，字段名是对外固定约定
type SubmitFlagReq struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	Flag        string `json:"flag"`
}

// SubmitFlagResp 提交 Flag 接口的响应体。
// NewScore 仅在 Correct 为 true 时返回。
type SubmitFlagResp struct {
	Correct  bool   `json:"correct"`
	Message  string `json:"message"`
	NewScore *uint  `json:"newScore,omitempty"`
}
