// file: dto/challenge.go
package dto

import "strings"

// ========== 请求 DTO ==========

type CreateChallengeReq struct {
	// 规范字段（snake_case）
	ChallengeName string `json:"challenge_name"`
	CategoryID    uint32 `json:"category_id"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	Type          string `json:"type"` // standard / dynamic
	FlagPattern   string `json:"flag_pattern"`
	Difficulty    string `json:"difficulty"` // easy / medium / hard
	Points        uint   `json:"points"`
	InitialValue  uint   `json:"initial_value"`
	DecayLimit    uint   `json:"decay_limit"`
	MinimumValue  uint   `json:"minimum_value"`

	// 兼容旧客户端的 camelCase 别名，别名与规范 tag 不重复
	ChallengeNameCamel string `json:"challengeName"`
	CategoryIDCamel    uint32 `json:"categoryId"`
	FlagPatternCamel   string `json:"flagPattern"`
	InitialValueCamel  uint   `json:"initialValue"`
	DecayLimitCamel    uint   `json:"decayLimit"`
	MinimumValueCamel  uint   `json:"minimumValue"`
}

// Normalize: camelCase 别名归一化到 snake_case，并做轻量默认值处理
func (r *CreateChallengeReq) Normalize() {
	if r.ChallengeName == "" && r.ChallengeNameCamel != "" {
		r.ChallengeName = r.ChallengeNameCamel
	}
	if r.CategoryID == 0 && r.CategoryIDCamel != 0 {
		r.CategoryID = r.CategoryIDCamel
	}
	if r.FlagPattern == "" && r.FlagPatternCamel != "" {
		r.FlagPattern = r.FlagPatternCamel
	}
	if r.InitialValue == 0 && r.InitialValueCamel != 0 {
		r.InitialValue = r.InitialValueCamel
	}
	if r.DecayLimit == 0 && r.DecayLimitCamel != 0 {
		r.DecayLimit = r.DecayLimitCamel
	}
	if r.MinimumValue == 0 && r.MinimumValueCamel != 0 {
		r.MinimumValue = r.MinimumValueCamel
	}

	r.ChallengeName = strings.TrimSpace(r.ChallengeName)
	r.Author = strings.TrimSpace(r.Author)
	r.Description = strings.TrimSpace(r.Description)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))

	if r.Difficulty == "" {
		r.Difficulty = "medium"
	}
}

type UpdateChallengeReq struct {
	State        *string `json:"state"` // visible/hidden
	Description  *string `json:"description"`
	Difficulty   *string `json:"difficulty"`
	FlagPattern  *string `json:"flag_pattern"`
	Points       *uint   `json:"points"`
	InitialValue *uint   `json:"initial_value"`
	DecayLimit   *uint   `json:"decay_limit"`
	MinimumValue *uint   `json:"minimum_value"`
}

// ========== 响应 DTO ==========

type ChallengeItemResp struct {
	ID            uint32 `json:"id"`
	ChallengeName string `json:"challenge_name"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Type          string `json:"type"`
	CurrentValue  uint   `json:"current_value"`
	SolvedCount   uint   `json:"solved_count"`
	Solved        bool   `json:"solved"`
}

type AttachmentMini struct {
	ID       uint64 `json:"id"`
	FileName string `json:"file_name"`
	Size     uint64 `json:"size"`
	SHA256   string `json:"sha256"`
}

type HintMini struct {
	ID       uint32 `json:"id"`
	Cost     uint   `json:"cost"`
	Unlocked bool   `json:"unlocked"`
}

type ChallengeDetailResp struct {
	ID            uint32           `json:"id"`
	ChallengeName string           `json:"challenge_name"`
	Category      string           `json:"category"`
	Author        string           `json:"author"`
	Description   string           `json:"description"`
	Type          string           `json:"type"`
	Difficulty    string           `json:"difficulty"`
	Attachments   []AttachmentMini `json:"attachments"`
	Hints         []HintMini       `json:"hints"`
	CurrentValue  uint             `json:"current_value"`
	SolvedCount   uint             `json:"solved_count"`
	Solved        bool             `json:"solved"`
}

// ====== Admin 专用响应 DTO ======

type AdminChallengeItemResp struct {
	ID            uint32 `json:"id"`
	ChallengeName string `json:"challenge_name"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Type          string `json:"type"`
	State         string `json:"state"`
	CurrentValue  uint   `json:"current_value"`
	SolvedCount   uint   `json:"solved_count"`
	UpdatedAt     string `json:"updated_at"`
}

type AdminChallengeDetailResp struct {
	ID            uint32 `json:"id"`
	ChallengeName string `json:"challenge_name"`
	Category      string `json:"category"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Difficulty    string `json:"difficulty"`
	State         string `json:"state"`
	FlagPattern   string `json:"flag_pattern"`
	Points        uint   `json:"points"`
	InitialValue  uint   `json:"initial_value"`
	DecayLimit    uint   `json:"decay_limit"`
	MinimumValue  uint   `json:"minimum_value"`
	CurrentValue  uint   `json:"current_value"`
	SolvedCount   uint   `json:"solved_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
