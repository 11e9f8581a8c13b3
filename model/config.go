package model

// Config 对应于 config.yaml 的顶级结构
type Config struct {
	Token string `mapstructure:"TOKEN"`
	Relay Relay  `mapstructure:"relay"`
}

// Relay 对应 "relay" 部分
type Relay struct {
	// AdminIDs 审核管理员的用户ID白名单
	AdminIDs []string `mapstructure:"admin_ids"`
	// TargetChannelID 审核通过后发布的目标频道
	TargetChannelID string `mapstructure:"target_channel_id"`
	// CooldownMinutes 两次投稿之间的冷却时间（分钟）
	CooldownMinutes int `mapstructure:"cooldown_minutes"`
	// PostTimeoutHours 待审核投稿的过期时间（小时）
	PostTimeoutHours int `mapstructure:"post_timeout_hours"`
	// ArchivePath 审核结果存档数据库路径，留空则不存档
	ArchivePath string `mapstructure:"archive_path"`
}
