// Package logging 提供分级日志器，输出到控制台，并可选地写入按大小轮转的文件。
//
// 级别全序：DEBUG < INFO < WARNING < ERROR < CRITICAL。底层使用 zap，
// 每个输出目标一个 core，通过 zapcore.NewTee 组合；文件轮转由 lumberjack 完成。
//
// 日志行由 text/template 渲染，可用字段为 .Time .Name .Level .Message，
// 默认模板见 [DefaultFormat]。结构化字段以 JSON 对象追加在行尾：
//
//	2026-01-02 15:04:05.000 - app - INFO - application running {"run_id":"..."}
//
// # 快速开始
//
//	logger, err := logging.New(logging.Config{
//	    Name:  "app",
//	    Level: "DEBUG",
//	    File:  "logs/app.log",
//	})
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("started", zap.String("addr", addr))
package logging
