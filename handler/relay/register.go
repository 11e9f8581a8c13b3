package relay

import (
	"relaybot/command/def"
	"relaybot/handler"
	"relaybot/moderation"

	"github.com/bwmarrin/discordgo"
)

// svc 投稿审核服务，由 RegisterHandlers 注入
var svc *moderation.Service

// RegisterHandlers registers all handlers for the relay package.
func RegisterHandlers(service *moderation.Service) {
	svc = service

	handler.AddCommandHandler(def.StartCommand.Name, startCommandHandler)
	handler.AddCommandHandler(def.HelpCommand.Name, helpCommandHandler)
	handler.AddCommandHandler(def.ApproveCommand.Name, approveCommandHandler)
	handler.AddCommandHandler(def.RejectCommand.Name, rejectCommandHandler)

	// 审核按钮和命令共用同一套 Approve/Reject 逻辑
	handler.AddComponentHandler("approve", ApproveButtonHandler)
	handler.AddComponentHandler("reject", RejectButtonHandler)
}

// interactionUserID 兼容私聊与服务器内触发的交互
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.User != nil {
		return i.User.ID
	}
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	return ""
}
