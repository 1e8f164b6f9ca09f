// Package logger 将标准库 log 重定向到 ~/.wuziqi/debug.log，
// 避免日志输出破坏终端棋盘界面。
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

const (
	logDirName  = ".wuziqi"
	logFileName = "debug.log"
	// 超过该大小时轮转，旧文件按时间戳改名保留
	maxLogSize = 10 * 1024 * 1024
)

var (
	debugLog *os.File
	logPath  string
)

// Init 打开日志文件并接管标准库 log 的输出
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("获取用户目录失败: %w", err)
	}

	logDir := filepath.Join(homeDir, logDirName)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}

	logPath = filepath.Join(logDir, logFileName)
	if err := rotateIfNeeded(logDir); err != nil {
		return err
	}

	debugLog, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %w", err)
	}

	log.SetOutput(debugLog)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("日志已初始化: %s", logPath)
	return nil
}

func rotateIfNeeded(logDir string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	backup := filepath.Join(logDir, fmt.Sprintf("%s.%d", logFileName, time.Now().Unix()))
	if err := os.Rename(logPath, backup); err != nil {
		return fmt.Errorf("轮转日志失败: %w", err)
	}
	return nil
}

// Close 关闭日志文件
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
	}
}

// LogInfo 记录普通信息
func LogInfo(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

// LogError 记录错误
func LogError(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

// LogPanic 记录 panic 及其调用栈
func LogPanic(r interface{}) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath 当前日志文件路径
func GetLogPath() string {
	return logPath
}
