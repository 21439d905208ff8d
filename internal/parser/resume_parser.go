package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/docreader"
	"resume-parser-go/internal/extractor"
	"resume-parser-go/internal/matcher"
	"resume-parser-go/internal/ner"
	"resume-parser-go/internal/textnorm"
	"resume-parser-go/internal/types"
)

// DefaultPreviewLimit 原始文本预览的默认字符预算（按字符计，不是字节）。
const DefaultPreviewLimit = 800

// truncationMarker 预览被截断时追加在末尾的标记。
const truncationMarker = "\n...[truncated]"

// Components 聚合解析流程的功能组件依赖，便于集中管理和测试替换
type Components struct {
	PDFReader  PDFTextReader              // PDF文本读取接口
	DOCXReader DOCXTextReader             // DOCX文本读取接口
	Recognizer extractor.PersonRecognizer // 人名识别能力，可选，为nil时姓名提取只走启发式策略
}

// Settings 纯配置项，不包含任何业务逻辑组件
type Settings struct {
	PreviewLimit int             // 预览截断的字符预算，<=0 时取 DefaultPreviewLimit
	Logger       *zerolog.Logger // 日志记录器，nil 时使用全局logger
}

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// WithcompPdfreader 设置PDF读取器组件
func WithcompPdfreader(reader PDFTextReader) ComponentOpt {
	return func(c *Components) {
		c.PDFReader = reader
	}
}

// WithcompDocxreader 设置DOCX读取器组件
func WithcompDocxreader(reader DOCXTextReader) ComponentOpt {
	return func(c *Components) {
		c.DOCXReader = reader
	}
}

// WithcompRecognizer 设置人名识别组件
func WithcompRecognizer(recognizer extractor.PersonRecognizer) ComponentOpt {
	return func(c *Components) {
		c.Recognizer = recognizer
	}
}

// WithsetPreviewlimit 设置预览字符预算
func WithsetPreviewlimit(limit int) SettingOpt {
	return func(s *Settings) {
		if limit > 0 {
			s.PreviewLimit = limit
		}
	}
}

// WithsetLogger 设置日志记录器
func WithsetLogger(logger *zerolog.Logger) SettingOpt {
	return func(s *Settings) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// ResumeParser 简历解析组件聚合类。
// 解析是输入的纯函数：不触碰存储，共享的只有只读的词表和识别器，
// 单个实例可以被任意多个 goroutine 并发使用。
type ResumeParser struct {
	PDFReader  PDFTextReader
	DOCXReader DOCXTextReader
	Recognizer extractor.PersonRecognizer

	Settings Settings
}

// NewResumeParser 创建新的简历解析器，使用明确分离的组件和设置
func NewResumeParser(comp *Components, set *Settings, opts ...SettingOpt) *ResumeParser {
	if comp == nil {
		comp = &Components{}
	}
	if set == nil {
		set = &Settings{}
	}

	// 应用额外的设置选项
	for _, opt := range opts {
		opt(set)
	}

	// 确保必要的默认值
	if set.PreviewLimit <= 0 {
		set.PreviewLimit = DefaultPreviewLimit
	}
	if set.Logger == nil {
		set.Logger = &log.Logger
	}

	p := &ResumeParser{
		PDFReader:  comp.PDFReader,
		DOCXReader: comp.DOCXReader,
		Recognizer: comp.Recognizer,
		Settings:   *set,
	}

	if p.Recognizer == nil {
		set.Logger.Warn().Msg("未配置人名识别器，姓名提取仅使用启发式策略")
	}

	return p
}

// CreateParser 使用组件选项和设置选项创建解析器
func CreateParser(ctx context.Context, compOpts []ComponentOpt, setOpts []SettingOpt) (*ResumeParser, error) {
	components := &Components{}
	settings := &Settings{
		PreviewLimit: DefaultPreviewLimit,
	}

	for _, opt := range compOpts {
		opt(components)
	}
	for _, opt := range setOpts {
		opt(settings)
	}

	// 验证必要组件
	if components.PDFReader == nil && components.DOCXReader == nil {
		return nil, fmt.Errorf("必须至少提供一个文档读取器组件")
	}

	return NewResumeParser(components, settings), nil
}

// CreateParserFromConfig 从配置创建解析器：按配置装配读取器与可选的人名识别器。
// 识别器初始化失败只降级告警，不阻止启动。
func CreateParserFromConfig(ctx context.Context, cfg *config.Config) (*ResumeParser, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	components := &Components{}

	var pdfOpts []docreader.PDFOption
	if cfg.Parser.PDFTimeoutSeconds > 0 {
		pdfOpts = append(pdfOpts, docreader.WithPDFTimeout(time.Duration(cfg.Parser.PDFTimeoutSeconds)*time.Second))
	}
	pdfReader, err := docreader.NewPDFReader(ctx, pdfOpts...)
	if err != nil {
		return nil, fmt.Errorf("创建PDF读取器失败: %w", err)
	}
	components.PDFReader = pdfReader
	components.DOCXReader = docreader.NewDOCXReader()

	if cfg.Parser.EnableNER {
		recognizer, nerErr := ner.NewRecognizer()
		if nerErr != nil {
			log.Warn().Err(nerErr).Msg("人名识别器初始化失败，姓名提取仅使用启发式策略")
		} else {
			components.Recognizer = recognizer
		}
	}

	settings := &Settings{
		PreviewLimit: cfg.Parser.PreviewLimit,
	}

	return NewResumeParser(components, settings), nil
}

// ParseFile 解析单个简历文件，返回完整的解析结果。
//
// 流程：扩展名判定（任何文件访问之前）→ 读取原始文本 → 空文档检查 →
// 规范化 → 字段提取 → 技能检测与分段 → 岗位匹配评分 → 组装结果。
// 字段提取永不失败，提取不到的字段用哨兵值填充；
// 可恢复错误（格式、空文档、读取失败）以 ParseError 返回。
func (p *ResumeParser) ParseFile(ctx context.Context, path string, ext string, jobDescription string) (*types.ParsedResume, error) {
	startTime := time.Now()

	format, err := docreader.ResolveFormat(ext)
	if err != nil {
		return nil, NewFormatError(path, err)
	}

	var raw string
	switch format {
	case docreader.FormatPDF:
		if p.PDFReader == nil {
			return nil, NewReadError(path, "PDF读取器未初始化")
		}
		raw, err = p.PDFReader.ReadFile(ctx, path)
	default:
		// FormatDOCX 与 FormatDOC 共用 DOCX 读取器
		if p.DOCXReader == nil {
			return nil, NewReadError(path, "DOCX读取器未初始化")
		}
		raw, err = p.DOCXReader.ReadFile(ctx, path)
	}
	if err != nil {
		// 超时与取消原样透出，调用方据此区分超时和文件损坏
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, NewReadError(path, err.Error())
	}

	if strings.TrimSpace(raw) == "" {
		return nil, NewEmptyDocumentError(path)
	}

	text := textnorm.Normalize(raw)

	skills := extractor.Skills(text)

	resume := &types.ParsedResume{
		Name:           extractor.Name(ctx, text, p.Recognizer),
		Email:          extractor.Email(text),
		Phone:          extractor.Phone(text),
		LinkedIn:       extractor.LinkedIn(text),
		GitHub:         extractor.GitHub(text),
		Skills:         skills,
		Education:      extractor.Education(text),
		Experience:     extractor.Experience(text),
		Projects:       extractor.Projects(text),
		SkillMatch:     matcher.Score(skills, jobDescription),
		RawTextPreview: previewText(text, p.Settings.PreviewLimit),
	}

	p.Settings.Logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("text_length", len(text)).
		Int("skills", len(skills)).
		Dur("duration", time.Since(startTime)).
		Msg("简历解析完成")

	return resume, nil
}

// previewText 按字符预算截断文本，超出时在预算处截断并追加标记。
func previewText(text string, limit int) string {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + truncationMarker
}
