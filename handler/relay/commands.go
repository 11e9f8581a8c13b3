package relay

import (
	"fmt"
	"log"

	"relaybot/moderation"

	"github.com/bwmarrin/discordgo"
)

func startCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondText(s, i, "👋 欢迎！私聊发送一张图片给我，管理员审核通过后会发布到频道")
}

func helpCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	helpText := "🤖 机器人命令:\n\n" +
		"/start - 开始使用机器人\n" +
		"/help - 显示帮助信息\n"

	if svc.IsAdmin(interactionUserID(i)) {
		helpText += "/approve <post_id> - 通过一条投稿\n" +
			"/reject <post_id> - 拒绝一条投稿"
	} else {
		helpText += "\n直接发送图片即可投稿！"
	}

	respondText(s, i, helpText)
}

func approveCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	postID := i.ApplicationCommandData().Options[0].IntValue()
	result := svc.Approve(interactionUserID(i), postID)
	respondText(s, i, resolveMessage(result, moderation.VerdictApproved))
}

func rejectCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	postID := i.ApplicationCommandData().Options[0].IntValue()
	result := svc.Reject(interactionUserID(i), postID)
	respondText(s, i, resolveMessage(result, moderation.VerdictRejected))
}

// resolveMessage 把审核结果渲染成管理员可见的回复文本
func resolveMessage(result moderation.ResolveResult, verdict string) string {
	switch result.Status {
	case moderation.ResolveNotAdmin:
		return "❌ 该命令仅限管理员使用"
	case moderation.ResolveNotFound:
		return fmt.Sprintf("❌ 无效的投稿ID！当前待审核: %v", result.PendingIDs)
	case moderation.ResolveRelayFailed:
		return "❌ 发布到目标频道失败，投稿已放回待审核队列，请检查频道配置后重试"
	}

	if verdict == moderation.VerdictApproved {
		return "✅ 投稿已通过并发布！"
	}
	return "✅ 投稿已拒绝"
}

// respondText 以仅自己可见的消息回复交互
func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("回复交互失败: %v", err)
	}
}
