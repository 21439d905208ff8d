package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func sampleParsedResume() *types.ParsedResume {
	return &types.ParsedResume{
		Name:       "Alex Johnson",
		Email:      "alex.johnson@example.com",
		Phone:      "+1 (555) 867-5309",
		LinkedIn:   "https://linkedin.com/in/alex-johnson",
		GitHub:     "https://github.com/alexj",
		Skills:     []string{"Docker", "GO", "Python"},
		Education:  "B.Sc. Computer Science, State University, 2016",
		Experience: "Senior Developer at Acme (2020 - Present)",
		Projects:   "resume-parser: a tiny parsing tool",
		SkillMatch: types.SkillMatch{
			Percentage:    50.0,
			MatchedSkills: []string{"Python"},
			MissingSkills: []string{"Terraform"},
			TotalJDSkills: 2,
			MatchedCount:  1,
		},
		RawTextPreview: "Alex Johnson\nEmail: alex.johnson@example.com",
	}
}

func TestResumeRecordRoundTrip(t *testing.T) {
	parsed := sampleParsedResume()

	record := &ResumeRecord{}
	require.NoError(t, record.FromParsedResume(parsed))

	got := record.ToParsedResume()
	assert.Equal(t, parsed, got, "展开为列再还原应得到等价的解析结果")
}

func TestFromParsedResumeEmptyCollections(t *testing.T) {
	parsed := &types.ParsedResume{
		Name:       types.NotFound,
		Email:      types.NotFound,
		Phone:      types.NotFound,
		LinkedIn:   types.NotFound,
		GitHub:     types.NotFound,
		Skills:     nil,
		Education:  types.NotFound,
		Experience: types.NotFound,
		Projects:   types.NotFound,
		SkillMatch: types.EmptySkillMatch(),
	}

	record := &ResumeRecord{}
	require.NoError(t, record.FromParsedResume(parsed))

	// JSON列不允许NULL，空技能列表应存成[]
	assert.Equal(t, "[]", string(record.Skills))

	got := record.ToParsedResume()
	assert.Equal(t, []string{}, got.Skills)
	assert.Equal(t, types.EmptySkillMatch(), got.SkillMatch)
	assert.Equal(t, types.NotFound, got.Name)
}

func TestSkillListAndMatchResultOnEmptyColumns(t *testing.T) {
	record := &ResumeRecord{}

	assert.Equal(t, []string{}, record.SkillList(), "未设置技能列时应返回空切片而不是nil")
	assert.Equal(t, types.EmptySkillMatch(), record.MatchResult())
}

func TestSkillListDecodesStoredJSON(t *testing.T) {
	record := &ResumeRecord{Skills: StringToJSON(`["Docker","Python"]`)}
	assert.Equal(t, []string{"Docker", "Python"}, record.SkillList())
}

func TestNewOutboxMessage(t *testing.T) {
	msg := NewOutboxMessage("sub-uuid-1", "resume.parsed", []byte(`{"event_id":"e1"}`), "resume.events", "resume.parsed")

	assert.Equal(t, "sub-uuid-1", msg.AggregateID)
	assert.Equal(t, "resume.parsed", msg.EventType)
	assert.Equal(t, `{"event_id":"e1"}`, msg.Payload)
	assert.Equal(t, "resume.events", msg.TargetExchange)
	assert.Equal(t, "resume.parsed", msg.TargetRoutingKey)
	assert.Equal(t, "PENDING", msg.Status)
	assert.Zero(t, msg.RetryCount)
	assert.Nil(t, msg.ProcessedAt)
}
