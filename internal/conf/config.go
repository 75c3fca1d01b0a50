package conf

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Mongo       MongoConfig       `mapstructure:"mongo"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Generator   GeneratorConfig   `mapstructure:"generator"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	// BaseURL is the origin used when building shareable links. When empty
	// the request origin is used instead.
	BaseURL string `mapstructure:"base_url"`
}

type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type GeneratorConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type LeaderboardConfig struct {
	RebuildEvery string `mapstructure:"rebuild_every"`
	Size         int    `mapstructure:"size"`
}

// LoadConfig 加载配置
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv() // 自动读取环境变量

	// 允许环境变量替换 YAML 中的 ${VAR}
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	// 显式展开环境变量
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.Contains(val, "${") {
			v.Set(key, os.ExpandEnv(val))
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	if c.Leaderboard.RebuildEvery == "" {
		c.Leaderboard.RebuildEvery = "@every 5m"
	}
	if c.Leaderboard.Size <= 0 {
		c.Leaderboard.Size = 100
	}

	return &c, nil
}
