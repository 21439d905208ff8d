package ner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecognizer(t *testing.T) {
	rec, err := NewRecognizer()
	require.NoError(t, err, "内置模型应能正常加载")
	require.NotNil(t, rec)
}

func TestPeople(t *testing.T) {
	rec, err := NewRecognizer()
	require.NoError(t, err)

	people, err := rec.People(context.Background(), "Alex Johnson\nSenior Software Engineer in Boston")
	require.NoError(t, err, "识别普通文本不应返回错误")
	for _, p := range people {
		assert.NotEmpty(t, p, "识别出的人名不应为空串")
	}
}

func TestPeopleCanceledContext(t *testing.T) {
	rec, err := NewRecognizer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = rec.People(ctx, "any text")
	assert.ErrorIs(t, err, context.Canceled, "已取消的上下文应立即返回错误")
}
