package def

import "github.com/bwmarrin/discordgo"

// StartCommand /start 命令定义
var StartCommand = &discordgo.ApplicationCommand{
	Name:        "start",
	Description: "开始使用机器人并查看投稿说明",
}

// HelpCommand /help 命令定义
var HelpCommand = &discordgo.ApplicationCommand{
	Name:        "help",
	Description: "显示帮助信息",
}

// ApproveCommand /approve 命令定义（仅管理员）
var ApproveCommand = &discordgo.ApplicationCommand{
	Name:        "approve",
	Description: "通过一条投稿（仅管理员）",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "post_id",
			Description: "待审核的投稿ID",
			Required:    true,
		},
	},
}

// RejectCommand /reject 命令定义（仅管理员）
var RejectCommand = &discordgo.ApplicationCommand{
	Name:        "reject",
	Description: "拒绝一条投稿（仅管理员）",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "post_id",
			Description: "待审核的投稿ID",
			Required:    true,
		},
	},
}
