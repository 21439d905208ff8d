// Package handler 实现简历解析服务的HTTP处理器。
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/docreader"
	"resume-parser-go/internal/extractor"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/matcher"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/storage"
	"resume-parser-go/internal/storage/models"
	"resume-parser-go/internal/tracing"
	"resume-parser-go/internal/types"
	pkgutils "resume-parser-go/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
	googleuuid "github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// presignedURLExpiry 原始文件下载链接的有效期
const presignedURLExpiry = 15 * time.Minute

// maxListPageSize 列表接口单页上限
const maxListPageSize = 100

// ResumeHandler 简历处理器，负责协调上传、解析、持久化与查询流程
type ResumeHandler struct {
	cfg     *config.Config
	storage *storage.Storage
	parser  *parser.ResumeParser
}

// NewResumeHandler 创建一个新的简历处理器
func NewResumeHandler(cfg *config.Config, storage *storage.Storage, resumeParser *parser.ResumeParser) *ResumeHandler {
	return &ResumeHandler{
		cfg:     cfg,
		storage: storage,
		parser:  resumeParser,
	}
}

// UploadResumeResponse 简历上传响应
type UploadResumeResponse struct {
	ID             uint64              `json:"id"`
	SubmissionUUID string              `json:"submission_uuid"`
	Filename       string              `json:"filename"`
	Resume         *types.ParsedResume `json:"resume"`
}

// ResumeSummary 列表接口中的简历摘要
type ResumeSummary struct {
	ID             uint64    `json:"id"`
	SubmissionUUID string    `json:"submission_uuid"`
	Filename       string    `json:"filename"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	SkillCount     int       `json:"skill_count"`
	MatchedPercent float64   `json:"matched_percent"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListResumesResponse 简历分页列表响应
type ListResumesResponse struct {
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Items    []ResumeSummary `json:"items"`
}

// ResumeDetailResponse 简历详情响应
type ResumeDetailResponse struct {
	ID             uint64              `json:"id"`
	SubmissionUUID string              `json:"submission_uuid"`
	Filename       string              `json:"filename"`
	CreatedAt      time.Time           `json:"created_at"`
	Resume         *types.ParsedResume `json:"resume"`
	FileURL        string              `json:"file_url,omitempty"`
}

// MatchRequest 重新评分请求
type MatchRequest struct {
	JobDescription string `json:"job_description"`
}

// MatchResponse 重新评分响应。结果不落库，只返回给调用方。
type MatchResponse struct {
	ID         uint64           `json:"id"`
	SkillMatch types.SkillMatch `json:"skill_match"`
}

// UploadResume 处理简历上传请求。
//
// 校验顺序：文件存在 → 大小上限 → 扩展名 → MD5去重 → 解析。
// 解析成功后记录与事件行在同一事务落库；对象归档和事件发布都是
// 尽力而为，不影响请求结果。
func (h *ResumeHandler) UploadResume(ctx context.Context, c *app.RequestContext) {
	span := trace.SpanFromContext(ctx)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
		return
	}
	jobDescription := c.PostForm("job_description")

	if h.cfg.Upload.MaxFileSizeMB > 0 && fileHeader.Size > h.cfg.Upload.MaxFileSizeBytes() {
		c.JSON(consts.StatusRequestEntityTooLarge, utils.H{
			"error": fmt.Sprintf("文件超过大小上限(%dMB)", h.cfg.Upload.MaxFileSizeMB),
		})
		return
	}

	// 扩展名判定放在读文件之前，不支持的格式立即拒绝
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, err := docreader.ResolveFormat(ext); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "不支持的文件格式，仅支持PDF/DOC/DOCX"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "读取上传文件内容失败"})
		return
	}

	fileMD5Hex := pkgutils.CalculateMD5(fileBytes)

	// 原子地检查并登记文件MD5。后续任一步骤失败都要撤销登记，
	// 否则失败的上传会挡住同一文件的重试。
	dedupMarked := false
	if h.storage.Redis != nil {
		exists, dedupErr := h.storage.Redis.CheckAndAddRawFileMD5(ctx, fileMD5Hex)
		if dedupErr != nil {
			logger.Warn().Err(dedupErr).Str("md5", fileMD5Hex).Msg("查询文件MD5去重集合失败，本次跳过去重")
		} else if exists {
			logger.Info().
				Str("md5", fileMD5Hex).
				Str("filename", fileHeader.Filename).
				Msg("检测到重复的文件MD5，拒绝本次上传")
			c.JSON(consts.StatusConflict, utils.H{"error": "该简历文件此前已上传", "md5": fileMD5Hex})
			return
		} else {
			dedupMarked = true
		}
	}
	undoDedup := func() {
		if !dedupMarked {
			return
		}
		if err := h.storage.Redis.RemoveRawFileMD5(ctx, fileMD5Hex); err != nil {
			logger.Warn().Err(err).Str("md5", fileMD5Hex).Msg("撤销文件MD5登记失败")
		}
	}

	// 解析器以文件路径为输入，先落临时文件
	tmpFile, err := os.CreateTemp("", "resume-upload-*"+ext)
	if err != nil {
		undoDedup()
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "创建临时文件失败"})
		return
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)
	if _, err := tmpFile.Write(fileBytes); err != nil {
		_ = tmpFile.Close()
		undoDedup()
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "写入临时文件失败"})
		return
	}
	if err := tmpFile.Close(); err != nil {
		undoDedup()
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "写入临时文件失败"})
		return
	}

	parseCtx := ctx
	if h.cfg.Upload.ParseTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		parseCtx, cancel = context.WithTimeout(ctx, time.Duration(h.cfg.Upload.ParseTimeoutSeconds)*time.Second)
		defer cancel()
	}

	parsed, err := h.parser.ParseFile(parseCtx, tmpPath, ext, jobDescription)
	if err != nil {
		undoDedup()
		tracing.RecordError(span, err, tracing.ErrorTypeParser)
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("解析简历失败")

		switch {
		case errors.Is(err, docreader.ErrUnsupportedFormat):
			c.JSON(consts.StatusBadRequest, utils.H{"error": "不支持的文件格式，仅支持PDF/DOC/DOCX"})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(consts.StatusUnprocessableEntity, utils.H{"error": "解析超时", "detail": err.Error()})
		case errors.Is(err, docreader.ErrEmptyDocument), errors.Is(err, parser.ErrReadDocumentFailed):
			c.JSON(consts.StatusUnprocessableEntity, utils.H{"error": "无法解析该简历文件", "detail": err.Error()})
		default:
			c.JSON(consts.StatusInternalServerError, utils.H{"error": "解析简历失败"})
		}
		return
	}

	record := &models.ResumeRecord{}
	if err := record.FromParsedResume(parsed); err != nil {
		undoDedup()
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "转换解析结果失败"})
		return
	}

	uuidV7, err := uuid.NewV7()
	if err != nil {
		undoDedup()
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "生成UUIDv7失败"})
		return
	}
	record.SubmissionUUID = uuidV7.String()
	record.Filename = fileHeader.Filename
	record.RawFileMD5 = fileMD5Hex

	// 对象键在入库前就确定，DB行始终指向归档位置
	if h.storage.MinIO != nil {
		record.ObjectKey = storage.ResumeObjectKey(record.SubmissionUUID, ext)
	}

	if h.storage.MySQL == nil {
		undoDedup()
		c.JSON(consts.StatusServiceUnavailable, utils.H{"error": "存储未配置，无法保存解析结果"})
		return
	}

	// 只有配置了消息代理才写事件行，避免发件箱无人消费时无限堆积
	var event *types.ResumeParsedEvent
	if h.storage.RabbitMQ != nil {
		event = &types.ResumeParsedEvent{
			EventID:        googleuuid.NewString(),
			SubmissionUUID: record.SubmissionUUID,
			Filename:       record.Filename,
			Name:           parsed.Name,
			Email:          parsed.Email,
			SkillCount:     len(parsed.Skills),
			MatchedPercent: parsed.SkillMatch.Percentage,
			ParsedAt:       time.Now(),
		}
	}

	if err := h.storage.MySQL.CreateResumeWithOutbox(ctx, record, event); err != nil {
		undoDedup()
		tracing.RecordError(span, err, tracing.ErrorTypeDB)
		logger.Error().Err(err).Str("submission_uuid", record.SubmissionUUID).Msg("保存简历解析结果失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "保存解析结果失败"})
		return
	}

	// 入库成功后的归档是尽力而为，失败只告警
	if h.storage.MinIO != nil {
		if _, err := h.storage.MinIO.UploadResumeFile(ctx, record.SubmissionUUID, ext, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
			logger.Warn().Err(err).Str("submission_uuid", record.SubmissionUUID).Msg("归档原始文件失败")
		}
		if parsed.RawTextPreview != "" {
			if _, err := h.storage.MinIO.UploadParsedText(ctx, record.SubmissionUUID, parsed.RawTextPreview); err != nil {
				logger.Warn().Err(err).Str("submission_uuid", record.SubmissionUUID).Msg("归档解析文本失败")
			}
		}
	}

	span.SetAttributes(
		attribute.String("resume.submission_uuid", record.SubmissionUUID),
		attribute.String("resume.name", tracing.SafeAttributeValue("name", parsed.Name, tracing.DefaultMaxLength)),
		attribute.Int("resume.skill_count", len(parsed.Skills)),
	)

	logger.Info().
		Uint64("id", record.ID).
		Str("submission_uuid", record.SubmissionUUID).
		Str("filename", record.Filename).
		Int("skill_count", len(parsed.Skills)).
		Msg("简历解析入库完成")

	c.JSON(consts.StatusCreated, UploadResumeResponse{
		ID:             record.ID,
		SubmissionUUID: record.SubmissionUUID,
		Filename:       record.Filename,
		Resume:         parsed,
	})
}

// ListResumes 分页查询简历摘要
func (h *ResumeHandler) ListResumes(ctx context.Context, c *app.RequestContext) {
	if h.storage.MySQL == nil {
		c.JSON(consts.StatusServiceUnavailable, utils.H{"error": "存储未配置"})
		return
	}

	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	pageSize := 20
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 && v <= maxListPageSize {
		pageSize = v
	}

	records, total, err := h.storage.MySQL.ListResumes(ctx, page, pageSize)
	if err != nil {
		logger.Error().Err(err).Msg("查询简历列表失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "查询简历列表失败"})
		return
	}

	items := make([]ResumeSummary, 0, len(records))
	for i := range records {
		r := &records[i]
		match := r.MatchResult()
		items = append(items, ResumeSummary{
			ID:             r.ID,
			SubmissionUUID: r.SubmissionUUID,
			Filename:       r.Filename,
			Name:           r.Name,
			Email:          r.Email,
			SkillCount:     len(r.SkillList()),
			MatchedPercent: match.Percentage,
			CreatedAt:      r.CreatedAt,
		})
	}

	c.JSON(consts.StatusOK, ListResumesResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	})
}

// GetResume 查询单条简历的完整解析结果。
// 带 file_url 查询参数且归档开启时，附带原始文件的预签名下载链接。
func (h *ResumeHandler) GetResume(ctx context.Context, c *app.RequestContext) {
	record, ok := h.loadResumeByPathID(ctx, c)
	if !ok {
		return
	}

	resp := ResumeDetailResponse{
		ID:             record.ID,
		SubmissionUUID: record.SubmissionUUID,
		Filename:       record.Filename,
		CreatedAt:      record.CreatedAt,
		Resume:         record.ToParsedResume(),
	}

	if c.Query("file_url") != "" && h.storage.MinIO != nil && record.ObjectKey != "" {
		url, err := h.storage.MinIO.GetPresignedURL(ctx, record.ObjectKey, presignedURLExpiry)
		if err != nil {
			logger.Warn().Err(err).Str("object_key", record.ObjectKey).Msg("生成预签名下载链接失败")
		} else {
			resp.FileURL = url
		}
	}

	c.JSON(consts.StatusOK, resp)
}

// ExportResume 以附件形式导出单条简历的解析结果JSON
func (h *ResumeHandler) ExportResume(ctx context.Context, c *app.RequestContext) {
	record, ok := h.loadResumeByPathID(ctx, c)
	if !ok {
		return
	}

	export := types.ResumeExport{
		ID:           record.ID,
		Filename:     record.Filename,
		ParsedAt:     record.CreatedAt,
		ParsedResume: *record.ToParsedResume(),
	}

	filename := fmt.Sprintf("resume_%d_%s.json", record.ID, sanitizeExportName(record.Name))
	c.Response.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.JSON(consts.StatusOK, export)
}

// MatchResume 用新的岗位描述对已入库的简历重新评分，结果不落库。
// 岗位技能的检出结果按岗位描述MD5缓存，相同岗位的重复评分不再重新检出。
func (h *ResumeHandler) MatchResume(ctx context.Context, c *app.RequestContext) {
	record, ok := h.loadResumeByPathID(ctx, c)
	if !ok {
		return
	}

	var req MatchRequest
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
		return
	}
	jd := strings.TrimSpace(req.JobDescription)
	if jd == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "job_description不能为空"})
		return
	}

	result := matcher.ScoreAgainstSkills(record.SkillList(), h.jdSkills(ctx, jd))

	c.JSON(consts.StatusOK, MatchResponse{
		ID:         record.ID,
		SkillMatch: result,
	})
}

// DeleteResume 删除简历记录，并尽力清理归档对象与去重登记
func (h *ResumeHandler) DeleteResume(ctx context.Context, c *app.RequestContext) {
	record, ok := h.loadResumeByPathID(ctx, c)
	if !ok {
		return
	}

	if err := h.storage.MySQL.DeleteResume(ctx, record.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(consts.StatusNotFound, utils.H{"error": "简历不存在"})
			return
		}
		logger.Error().Err(err).Uint64("id", record.ID).Msg("删除简历记录失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "删除简历记录失败"})
		return
	}

	// 行已删除，剩余清理失败只告警
	if h.storage.MinIO != nil {
		if record.ObjectKey != "" {
			if err := h.storage.MinIO.DeleteFile(ctx, record.ObjectKey); err != nil {
				logger.Warn().Err(err).Str("object_key", record.ObjectKey).Msg("删除原始文件对象失败")
			}
		}
		if err := h.storage.MinIO.DeleteFile(ctx, storage.ParsedTextObjectKey(record.SubmissionUUID)); err != nil {
			logger.Warn().Err(err).Str("submission_uuid", record.SubmissionUUID).Msg("删除解析文本对象失败")
		}
	}
	if h.storage.Redis != nil && record.RawFileMD5 != "" {
		if err := h.storage.Redis.RemoveRawFileMD5(ctx, record.RawFileMD5); err != nil {
			logger.Warn().Err(err).Str("md5", record.RawFileMD5).Msg("清除文件MD5登记失败")
		}
	}

	c.JSON(consts.StatusOK, utils.H{"status": "deleted", "id": record.ID})
}

// HealthCheck 健康检查
func (h *ResumeHandler) HealthCheck(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"status": "ok"})
}

// loadResumeByPathID 解析路径中的:id并加载对应记录。
// 失败时已写好响应，调用方直接返回即可。
func (h *ResumeHandler) loadResumeByPathID(ctx context.Context, c *app.RequestContext) (*models.ResumeRecord, bool) {
	if h.storage.MySQL == nil {
		c.JSON(consts.StatusServiceUnavailable, utils.H{"error": "存储未配置"})
		return nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "无效的简历ID"})
		return nil, false
	}

	record, err := h.storage.MySQL.GetResumeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(consts.StatusNotFound, utils.H{"error": "简历不存在"})
			return nil, false
		}
		logger.Error().Err(err).Uint64("id", id).Msg("查询简历记录失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "查询简历记录失败"})
		return nil, false
	}
	return record, true
}

// jdSkills 返回岗位描述检出的技能列表，Redis可用时按岗位描述MD5缓存24小时
func (h *ResumeHandler) jdSkills(ctx context.Context, jobDescription string) []string {
	if h.storage.Redis == nil {
		return extractor.Skills(jobDescription)
	}

	jdMD5 := pkgutils.CalculateMD5([]byte(jobDescription))

	if cached, err := h.storage.Redis.GetCachedJDSkills(ctx, jdMD5); err == nil {
		var skills []string
		if jsonErr := json.Unmarshal([]byte(cached), &skills); jsonErr == nil {
			return skills
		}
		logger.Warn().Str("jd_md5", jdMD5).Msg("岗位技能缓存内容损坏，按未命中处理")
	} else if !errors.Is(err, storage.ErrNotFound) {
		logger.Warn().Err(err).Str("jd_md5", jdMD5).Msg("查询岗位技能缓存失败")
	}

	skills := extractor.Skills(jobDescription)
	if skills == nil {
		skills = []string{}
	}
	if data, err := json.Marshal(skills); err == nil {
		if cacheErr := h.storage.Redis.CacheJDSkills(ctx, jdMD5, string(data)); cacheErr != nil {
			logger.Warn().Err(cacheErr).Str("jd_md5", jdMD5).Msg("写入岗位技能缓存失败")
		}
	}
	return skills
}

// 导出文件名只保留字母数字与连字符，空白折叠为下划线
var exportNameSanitizer = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

func sanitizeExportName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == types.NotFound {
		return "candidate"
	}
	name = strings.Join(strings.Fields(name), "_")
	name = exportNameSanitizer.ReplaceAllString(name, "")
	if name == "" {
		return "candidate"
	}
	return name
}
