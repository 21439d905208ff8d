// Package ner 提供基于 prose 内置统计模型的人名识别实现。
// 该能力是可选的：服务在配置开启时构建一次识别器，失败只降级为
// 跳过对应的姓名提取策略，不影响其余流程。
package ner

import (
	"context"
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// personLabel prose 内置命名实体模型的人名标签。
const personLabel = "PERSON"

// Recognizer 人名识别器。模型数据随包内嵌，实例本身无状态，可并发使用。
type Recognizer struct{}

// NewRecognizer 构建人名识别器，并用一小段文本预热内置模型，
// 让加载问题在启动期暴露而不是第一次解析请求时。
func NewRecognizer() (*Recognizer, error) {
	if _, err := prose.NewDocument("warm up"); err != nil {
		return nil, fmt.Errorf("人名识别模型初始化失败: %w", err)
	}
	return &Recognizer{}, nil
}

// People 返回文本中按出现顺序排列的人名实体。
func (r *Recognizer) People(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	entities := doc.Entities()
	people := make([]string, 0, len(entities))
	for _, ent := range entities {
		if ent.Label == personLabel {
			people = append(people, ent.Text)
		}
	}
	return people, nil
}
