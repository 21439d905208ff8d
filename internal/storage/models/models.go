package models

import (
	"encoding/json"
	"time"

	"resume-parser-go/internal/types"

	"gorm.io/datatypes"
)

// ResumeRecord 简历解析结果持久化记录
// 解析输出的字符串字段按列展开，技能列表与匹配结果以JSON列存储
type ResumeRecord struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	SubmissionUUID string         `gorm:"type:char(36);not null;uniqueIndex:idx_resumes_submission_uuid" json:"submission_uuid"`
	Filename       string         `gorm:"type:varchar(255)" json:"filename"`
	Name           string         `gorm:"type:varchar(255)" json:"name"`
	Email          string         `gorm:"type:varchar(255)" json:"email"`
	Phone          string         `gorm:"type:varchar(50)" json:"phone"`
	LinkedIn       string         `gorm:"type:varchar(512)" json:"linkedin"`
	GitHub         string         `gorm:"type:varchar(512)" json:"github"`
	Skills         datatypes.JSON `gorm:"type:json" json:"skills"`
	Education      string         `gorm:"type:text" json:"education"`
	Experience     string         `gorm:"type:text" json:"experience"`
	Projects       string         `gorm:"type:text" json:"projects"`
	SkillMatch     datatypes.JSON `gorm:"type:json" json:"skill_match"`
	RawTextPreview string         `gorm:"type:text" json:"raw_text_preview"`
	RawFileMD5     string         `gorm:"type:char(32);index:idx_resumes_raw_file_md5" json:"raw_file_md5"`
	ObjectKey      string         `gorm:"type:varchar(1024)" json:"object_key"` // 归档关闭时为空
	CreatedAt      time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime" json:"updated_at"`
}

func (ResumeRecord) TableName() string {
	return "resumes"
}

// FromParsedResume 从领域模型填充可展开的列
// 标识字段（SubmissionUUID、Filename、RawFileMD5、ObjectKey）由调用方另行设置
func (r *ResumeRecord) FromParsedResume(parsed *types.ParsedResume) error {
	r.Name = parsed.Name
	r.Email = parsed.Email
	r.Phone = parsed.Phone
	r.LinkedIn = parsed.LinkedIn
	r.GitHub = parsed.GitHub
	r.Education = parsed.Education
	r.Experience = parsed.Experience
	r.Projects = parsed.Projects
	r.RawTextPreview = parsed.RawTextPreview

	// JSON列缺省为空数组/零值结构，避免NULL
	r.Skills = StringToJSON("[]")
	if len(parsed.Skills) > 0 {
		jsonBytes, err := json.Marshal(parsed.Skills)
		if err == nil {
			r.Skills = datatypes.JSON(jsonBytes)
		}
	}

	matchBytes, err := json.Marshal(parsed.SkillMatch)
	if err == nil {
		r.SkillMatch = datatypes.JSON(matchBytes)
	}

	return nil
}

// ToParsedResume 将数据库模型还原为领域模型
func (r *ResumeRecord) ToParsedResume() *types.ParsedResume {
	parsed := &types.ParsedResume{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		LinkedIn:       r.LinkedIn,
		GitHub:         r.GitHub,
		Skills:         []string{},
		Education:      r.Education,
		Experience:     r.Experience,
		Projects:       r.Projects,
		SkillMatch:     types.EmptySkillMatch(),
		RawTextPreview: r.RawTextPreview,
	}

	// 解析JSON字段
	if len(r.Skills) > 0 {
		_ = json.Unmarshal(r.Skills, &parsed.Skills)
	}
	if len(r.SkillMatch) > 0 {
		_ = json.Unmarshal(r.SkillMatch, &parsed.SkillMatch)
	}

	return parsed
}

// SkillList 解码技能JSON列，供只需要技能列表的调用方使用
func (r *ResumeRecord) SkillList() []string {
	skills := []string{}
	if len(r.Skills) > 0 {
		_ = json.Unmarshal(r.Skills, &skills)
	}
	return skills
}

// MatchResult 解码匹配结果JSON列
func (r *ResumeRecord) MatchResult() types.SkillMatch {
	match := types.EmptySkillMatch()
	if len(r.SkillMatch) > 0 {
		_ = json.Unmarshal(r.SkillMatch, &match)
	}
	return match
}

// StringToJSON Helper function to convert string to datatypes.JSON
func StringToJSON(s string) datatypes.JSON {
	return datatypes.JSON(s)
}
