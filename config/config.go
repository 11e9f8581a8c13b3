package config

import (
	"relaybot/model"

	"github.com/spf13/viper"
)

var Cfg model.Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// 与原始部署保持一致的默认值
	viper.SetDefault("relay.cooldown_minutes", 30)
	viper.SetDefault("relay.post_timeout_hours", 24)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
