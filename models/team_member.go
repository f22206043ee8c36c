// file: models/team_member.go
package models

import "time"

// 自定义队伍角色类型
type TeamMemberRole string

const (
	TeamRoleLeader TeamMemberRole = "leader"
	TeamRoleMember TeamMemberRole = "member"
)

// 一个用户同一时间只能在一支队伍里，user_id 单独唯一
type TeamMember struct {
	ID       uint32         `gorm:"primarykey"`
	TeamID   uint32         `gorm:"index;not null"`
	UserID   uint32         `gorm:"uniqueIndex:unique_member_user;not null"`
	User     User           `gorm:"foreignKey:UserID"`
	Role     TeamMemberRole `gorm:"type:varchar(20);default:'member'"`
	JoinedAt time.Time
}

func (TeamMember) TableName() string {
	return "novactf_team_members"
}
