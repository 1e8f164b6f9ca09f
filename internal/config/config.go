package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"` // 最大并发连接数
	SendQueueSize  int    `yaml:"send_queue_size"` // 每连接发送队列长度
	StallGrace     int    `yaml:"stall_grace"`     // 发送队列满后的宽限期（秒）
}

// RedisConfig Redis 配置，addr 为空时不启用排行榜
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 对局配置
type GameConfig struct {
	// 创建房间未携带参数时使用的默认对局参数（秒，0 表示不限制）
	MoveTimeout        int `yaml:"move_timeout"`         // 每步限时
	UndoRequestTimeout int `yaml:"undo_request_timeout"` // 悔棋应答限时
	UndoDial           int `yaml:"undo_dial"`            // 每人悔棋次数上限，0 不限

	RoomCleanInterval int `yaml:"room_clean_interval"` // 空房间清理间隔（秒）
	RoomIdleTimeout   int `yaml:"room_idle_timeout"`   // 房间闲置超时（分钟）
}

// MoveTimeoutDuration 返回每步限时时长
func (c *GameConfig) MoveTimeoutDuration() time.Duration {
	return time.Duration(c.MoveTimeout) * time.Second
}

// UndoRequestTimeoutDuration 返回悔棋应答限时时长
func (c *GameConfig) UndoRequestTimeoutDuration() time.Duration {
	return time.Duration(c.UndoRequestTimeout) * time.Second
}

// RoomCleanIntervalDuration 返回空房间清理间隔
func (c *GameConfig) RoomCleanIntervalDuration() time.Duration {
	return time.Duration(c.RoomCleanInterval) * time.Second
}

// RoomIdleTimeoutDuration 返回房间闲置超时
func (c *GameConfig) RoomIdleTimeoutDuration() time.Duration {
	return time.Duration(c.RoomIdleTimeout) * time.Minute
}

// StallGraceDuration 返回发送队列宽限期
func (c *ServerConfig) StallGraceDuration() time.Duration {
	return time.Duration(c.StallGrace) * time.Second
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值（对局参数 0 表示不限制，不做兜底）
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1780
	}
	if cfg.Server.MaxConnections == 0 {
		cfg.Server.MaxConnections = 1000
	}
	if cfg.Server.SendQueueSize == 0 {
		cfg.Server.SendQueueSize = 256
	}
	if cfg.Server.StallGrace == 0 {
		cfg.Server.StallGrace = 5
	}
	if cfg.Game.RoomCleanInterval == 0 {
		cfg.Game.RoomCleanInterval = 300
	}
	if cfg.Game.RoomIdleTimeout == 0 {
		cfg.Game.RoomIdleTimeout = 30
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           1780,
			MaxConnections: 1000,
			SendQueueSize:  256,
			StallGrace:     5,
		},
		Game: GameConfig{
			MoveTimeout:        60,
			UndoRequestTimeout: 30,
			UndoDial:           3,
			RoomCleanInterval:  300,
			RoomIdleTimeout:    30,
		},
	}
}
