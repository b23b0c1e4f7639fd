package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	Redis   *Redis   `json:"redis" yaml:"redis"`
	MySQL   *MySQL   `json:"mysql" yaml:"mysql"`
	Jwt     *Jwt     `json:"jwt" yaml:"jwt"`
	Server  *Server  `json:"server" yaml:"server"`
	Rewards *Rewards `json:"rewards" yaml:"rewards"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if yaml.Unmarshal(content, &conf) != nil {
		panic(fmt.Sprintf("parse config.yaml failed: %v", err))
	}

	if conf.Rewards == nil {
		conf.Rewards = DefaultRewards()
	}
	conf.Rewards.applyDefaults()

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
