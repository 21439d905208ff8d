package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/parser"
)

// 命令行参数定义
var (
	filePath   = pflag.String("file", "", "简历文件路径，支持 .pdf/.docx/.doc (必填)")
	jdText     = pflag.String("jd", "", "岗位描述文本，用于技能匹配评分")
	jdFilePath = pflag.String("jd-file", "", "岗位描述文件路径，与 --jd 二选一")
	enableNER  = pflag.Bool("ner", false, "启用NER人名识别，需要加载英文模型，首次调用较慢")
	pretty     = pflag.Bool("pretty", false, "缩进格式化输出JSON")
	timeoutSec = pflag.Int("timeout", 60, "解析超时秒数，设为0不限制")
	verbose    = pflag.Bool("verbose", false, "输出解析过程日志到stderr")
)

func main() {
	pflag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "错误: 必须通过 --file 指定简历文件")
		pflag.Usage()
		os.Exit(1)
	}
	if *jdText != "" && *jdFilePath != "" {
		fmt.Fprintln(os.Stderr, "错误: --jd 和 --jd-file 只能指定一个")
		os.Exit(1)
	}

	// 结果走stdout，日志走stderr；默认只放出错误级别，保持管道输出干净
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	jobDescription := *jdText
	if *jdFilePath != "" {
		data, err := os.ReadFile(*jdFilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "错误: 读取岗位描述文件失败: %v\n", err)
			os.Exit(1)
		}
		jobDescription = string(data)
	}

	ctx := context.Background()
	if *timeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*timeoutSec)*time.Second)
		defer cancel()
	}

	// 走与服务端相同的装配路径，保证两边解析行为一致
	cfg := config.Config{}
	cfg.Parser.EnableNER = *enableNER
	resumeParser, err := parser.CreateParserFromConfig(ctx, &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 初始化解析器失败: %v\n", err)
		os.Exit(1)
	}

	ext := strings.ToLower(filepath.Ext(*filePath))
	parsed, err := resumeParser.ParseFile(ctx, *filePath, ext, jobDescription)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 解析失败: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(parsed, "", "  ")
	} else {
		out, err = json.Marshal(parsed)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 序列化结果失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
