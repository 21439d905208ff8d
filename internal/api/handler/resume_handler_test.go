package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/api/router"
	"resume-parser-go/internal/config"
	appCoreLogger "resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/storage"
)

// 这些测试只覆盖不依赖外部服务的路径：路由、参数校验、解析错误到
// 状态码的映射，以及存储未配置时的降级响应。读取器用桩实现注入。

var loggerSetupOnce sync.Once

func quietLogger() {
	loggerSetupOnce.Do(func() {
		appCoreLogger.Init(appCoreLogger.Config{Level: "error", Format: "json", TimeFormat: "15:04:05"})
		glog.SetLogger(hertzadapter.From(appCoreLogger.Logger))
		glog.SetLevel(glog.LevelError)
	})
}

type stubPDFReader struct {
	text string
	err  error
}

func (s *stubPDFReader) ReadFile(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

func (s *stubPDFReader) Read(ctx context.Context, reader io.Reader, uri string) (string, error) {
	return s.text, s.err
}

type stubDOCXReader struct {
	text string
	err  error
}

func (s *stubDOCXReader) ReadFile(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

const stubResumeText = `Alex Johnson
Email: alex.johnson@example.com | Phone: +1 (555) 867-5309

SKILLS
Python, Go, Docker

EXPERIENCE
Senior Developer at Acme`

func baseConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Address = "127.0.0.1:0"
	cfg.Server.ExitWaitSeconds = 1
	cfg.Upload.MaxFileSizeMB = 1
	cfg.Upload.ParseTimeoutSeconds = 5
	return cfg
}

// newTestEngine 构建一个无外部依赖的完整路由引擎：
// 存储管理器所有后端为nil，文档读取器用桩替换。
func newTestEngine(t *testing.T, cfg *config.Config, docxText string) *server.Hertz {
	t.Helper()
	quietLogger()

	resumeParser := parser.NewResumeParser(&parser.Components{
		PDFReader:  &stubPDFReader{text: docxText},
		DOCXReader: &stubDOCXReader{text: docxText},
	}, &parser.Settings{})

	resumeHandler := handler.NewResumeHandler(cfg, &storage.Storage{}, resumeParser)
	return router.NewServer(cfg, resumeHandler)
}

// createMultipartFormWithContent 用字节内容构造multipart表单
func createMultipartFormWithContent(t *testing.T, fileName string, fileContent []byte, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(fileContent))
	require.NoError(t, err)

	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func performUpload(t *testing.T, h *server.Hertz, body *bytes.Buffer, contentType string) *ut.ResponseRecorder {
	t.Helper()
	return ut.PerformRequest(h.Engine, "POST", "/api/v1/resumes",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
}

func errorField(t *testing.T, resp *ut.ResponseRecorder) string {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	msg, _ := payload["error"].(string)
	return msg
}

// 缺少file表单项应返回400
func TestUploadResumeMissingFile(t *testing.T) {
	h := newTestEngine(t, baseConfig(), stubResumeText)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("job_description", "Python"))
	require.NoError(t, writer.Close())

	resp := performUpload(t, h, body, writer.FormDataContentType())
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, errorField(t, resp), "文件未找到")
}

// 不支持的扩展名在读取文件内容之前就被拒绝
func TestUploadResumeUnsupportedExtension(t *testing.T) {
	h := newTestEngine(t, baseConfig(), stubResumeText)

	body, contentType := createMultipartFormWithContent(t, "resume.txt", []byte("plain text"), "")
	resp := performUpload(t, h, body, contentType)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, errorField(t, resp), "不支持的文件格式")
}

// 超过配置上限的文件应返回413
func TestUploadResumeOversize(t *testing.T) {
	cfg := baseConfig()
	cfg.Upload.MaxFileSizeMB = 1
	h := newTestEngine(t, cfg, stubResumeText)

	oversize := bytes.Repeat([]byte("a"), int(cfg.Upload.MaxFileSizeBytes())+1)
	body, contentType := createMultipartFormWithContent(t, "big.pdf", oversize, "")
	resp := performUpload(t, h, body, contentType)

	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	assert.Contains(t, errorField(t, resp), "大小上限")
}

// 读取器返回空文本时按不可解析处理，返回422
func TestUploadResumeEmptyDocument(t *testing.T) {
	h := newTestEngine(t, baseConfig(), "   \n\t ")

	body, contentType := createMultipartFormWithContent(t, "empty.docx", []byte("zip bytes"), "")
	resp := performUpload(t, h, body, contentType)

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, errorField(t, resp), "无法解析")
}

// 解析成功但数据库未配置时返回503，证明解析链路在存储之前已经走通
func TestUploadResumeWithoutDatabase(t *testing.T) {
	h := newTestEngine(t, baseConfig(), stubResumeText)

	body, contentType := createMultipartFormWithContent(t, "alex.docx", []byte("zip bytes"), "Python and Go")
	resp := performUpload(t, h, body, contentType)

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Contains(t, errorField(t, resp), "存储未配置")
}

func TestListResumesWithoutDatabase(t *testing.T) {
	h := newTestEngine(t, baseConfig(), stubResumeText)

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/resumes", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestGetResumeWithoutDatabase(t *testing.T) {
	h := newTestEngine(t, baseConfig(), stubResumeText)

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/resumes/1", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestMatchResumeWithoutDatabase(t *testing.T) {
	h := newTestEngine(t, baseConfig(), stubResumeText)

	payload := bytes.NewBufferString(`{"job_description":"Python"}`)
	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/resumes/1/match",
		&ut.Body{Body: payload, Len: payload.Len()},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestDeleteResumeWithoutDatabase(t *testing.T) {
	h := newTestEngine(t, baseConfig(), stubResumeText)

	resp := ut.PerformRequest(h.Engine, "DELETE", "/api/v1/resumes/1", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

// 健康检查不依赖任何后端
func TestHealthCheck(t *testing.T) {
	h := newTestEngine(t, baseConfig(), stubResumeText)

	resp := ut.PerformRequest(h.Engine, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])
}
