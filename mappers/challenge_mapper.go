// file: mappers/challenge_mapper.go
package mappers

import (
	"NovaCTF/dto"
	"NovaCTF/models"
)

func MapCreateReqToModel(req dto.CreateChallengeReq) models.Challenge {
	challenge := models.Challenge{
		ChallengeName: req.ChallengeName,
		CategoryID:    req.CategoryID,
		Author:        req.Author,
		Description:   req.Description,
		Type:          models.ChallengeType(req.Type),
		FlagPattern:   req.FlagPattern,
		Difficulty:    models.ChallengeDifficulty(req.Difficulty),
		Points:        req.Points,
		InitialValue:  req.InitialValue,
		DecayLimit:    req.DecayLimit,
		MinimumValue:  req.MinimumValue,
	}
	// 当前分值初始化：静态题取固定分，动态题取初始分
	if challenge.Type == models.ChallengeTypeDynamic {
		challenge.CurrentValue = req.InitialValue
	} else {
		challenge.CurrentValue = req.Points
	}
	return challenge
}

func MapModelToItemResp(ch models.Challenge, solved bool) dto.ChallengeItemResp {
	return dto.ChallengeItemResp{
		ID:            ch.ID,
		ChallengeName: ch.ChallengeName,
		Category:      ch.Category.Alias,
		Difficulty:    string(ch.Difficulty),
		Type:          string(ch.Type),
		CurrentValue:  ch.CurrentValue,
		SolvedCount:   ch.SolvedCount,
		Solved:        solved,
	}
}

func MapModelToAdminDetailResp(ch models.Challenge) dto.AdminChallengeDetailResp {
	return dto.AdminChallengeDetailResp{
		ID:            ch.ID,
		ChallengeName: ch.ChallengeName,
		Category:      ch.Category.Alias,
		Author:        ch.Author,
		Description:   ch.Description,
		Type:          string(ch.Type),
		Difficulty:    string(ch.Difficulty),
		State:         string(ch.State),
		FlagPattern:   ch.FlagPattern,
		Points:        ch.Points,
		InitialValue:  ch.InitialValue,
		DecayLimit:    ch.DecayLimit,
		MinimumValue:  ch.MinimumValue,
		CurrentValue:  ch.CurrentValue,
		SolvedCount:   ch.SolvedCount,
		CreatedAt:     ch.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     ch.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
