package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"text/template"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// DefaultFormat 默认日志行模板。
const DefaultFormat = "{{.Time}} - {{.Name}} - {{.Level}} - {{.Message}}"

const timeLayout = "2006-01-02 15:04:05.000"

var bufferPool = buffer.NewPool()

// record 模板可用的字段。
type record struct {
	Time    string
	Name    string
	Level   string
	Message string
}

// templateEncoder 按 text/template 渲染日志行，结构化字段以 JSON 对象追加在行尾。
type templateEncoder struct {
	*zapcore.MapObjectEncoder

	tmpl *template.Template
}

func newTemplateEncoder(format string) (*templateEncoder, error) {
	if format == "" {
		format = DefaultFormat
	}
	tmpl, err := template.New("log").Parse(format)
	if err != nil {
		return nil, fmt.Errorf("parse log format: %w", err)
	}
	// 模板引用了不存在的字段时在构造阶段就失败
	if err := tmpl.Execute(io.Discard, record{}); err != nil {
		return nil, fmt.Errorf("parse log format: %w", err)
	}

	return &templateEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		tmpl:             tmpl,
	}, nil
}

func (e *templateEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	maps.Copy(clone.Fields, e.Fields)

	return &templateEncoder{MapObjectEncoder: clone, tmpl: e.tmpl}
}

func (e *templateEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()

	err := e.tmpl.Execute(line, record{
		Time:    ent.Time.Format(timeLayout),
		Name:    ent.LoggerName,
		Level:   levelName(ent.Level),
		Message: ent.Message,
	})
	if err != nil {
		line.Free()

		return nil, fmt.Errorf("render log line: %w", err)
	}

	if len(e.Fields) > 0 || len(fields) > 0 {
		enc := e.Clone().(*templateEncoder)
		for _, f := range fields {
			f.AddTo(enc)
		}
		extra, err := json.Marshal(enc.Fields)
		if err != nil {
			line.Free()

			return nil, fmt.Errorf("encode log fields: %w", err)
		}
		line.AppendByte(' ')
		_, _ = line.Write(extra)
	}

	line.AppendString(zapcore.DefaultLineEnding)

	return line, nil
}
