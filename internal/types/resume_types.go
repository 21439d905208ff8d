package types

import "time"

// NotFound 字段缺失时的统一哨兵值。
// 输出记录的每个字段始终存在，提取失败用该值表示，绝不使用 null 或省略字段。
const NotFound = "Not Found"

// ParsedResume 一次解析调用的完整输出记录。
// 所有键固定存在；字符串字段缺失时为 NotFound，skills 缺失时为空列表，
// skill_match 在没有岗位描述时为零值结构（百分比为 0，两个列表为空）。
type ParsedResume struct {
	// 候选人姓名（五级回退策略提取）
	Name string `json:"name"`

	// 邮箱地址（首个匹配）
	Email string `json:"email"`

	// 电话号码（多模式按特异性排序匹配）
	Phone string `json:"phone"`

	// LinkedIn 完整档案URL（保留子路径与查询串）
	LinkedIn string `json:"linkedin"`

	// GitHub 完整档案URL（支持标签回退构造）
	GitHub string `json:"github"`

	// 命中的技能列表（按展示形式字典序排序，大小写不敏感去重）
	Skills []string `json:"skills"`

	// 教育经历段落文本
	Education string `json:"education"`

	// 工作经历段落文本
	Experience string `json:"experience"`

	// 项目经历段落文本
	Projects string `json:"projects"`

	// 与岗位描述的技能匹配结果
	SkillMatch SkillMatch `json:"skill_match"`

	// 规范化文本预览（800字符预算，截断时追加标记）
	RawTextPreview string `json:"raw_text_preview"`
}

// SkillMatch 简历技能与岗位描述的匹配评分。
// 不变式: TotalJDSkills == MatchedCount + len(MissingSkills)。
// 无岗位描述或简历无技能时，百分比为 0 且两个列表为空。
type SkillMatch struct {
	// 匹配百分比 [0,100]，保留一位小数
	Percentage float64 `json:"percentage"`

	// 双方共有的技能（顺序与岗位描述检出的技能列表一致）
	MatchedSkills []string `json:"matched_skills"`

	// 岗位要求但简历缺失的技能（顺序同上）
	MissingSkills []string `json:"missing_skills"`

	// 岗位描述中检出的技能总数
	TotalJDSkills int `json:"total_jd_skills"`

	// 匹配技能数
	MatchedCount int `json:"matched_count"`
}

// EmptySkillMatch 返回零值匹配结果，列表初始化为空切片以保证序列化为 []。
func EmptySkillMatch() SkillMatch {
	return SkillMatch{
		Percentage:    0.0,
		MatchedSkills: []string{},
		MissingSkills: []string{},
		TotalJDSkills: 0,
		MatchedCount:  0,
	}
}

// ResumeParsedEvent 简历解析完成后写入发件箱、经由消息队列对外发布的领域事件。
type ResumeParsedEvent struct {
	EventID        string    `json:"event_id"`
	SubmissionUUID string    `json:"submission_uuid"`
	ResumeID       uint64    `json:"resume_id"`
	Filename       string    `json:"filename"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	SkillCount     int       `json:"skill_count"`
	MatchedPercent float64   `json:"matched_percent"`
	ParsedAt       time.Time `json:"parsed_at"`
}

// ResumeExport JSON 导出下载的载荷（在解析记录之外附加导出元信息）。
type ResumeExport struct {
	ID       uint64    `json:"id"`
	Filename string    `json:"filename"`
	ParsedAt time.Time `json:"parsed_at"`
	ParsedResume
}
