package relay

import (
	"log"
	"time"

	"relaybot/moderation"

	"github.com/bwmarrin/discordgo"
)

// MessageCreate handles inbound DM messages as submission attempts.
// 投稿入口：普通用户私聊机器人发送图片。
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// 只处理私聊里来自真人的消息
	if m.GuildID != "" || m.Author == nil || m.Author.Bot {
		return
	}
	// 带附件的消息才算投稿，文字消息交给斜杠命令
	if len(m.Attachments) == 0 {
		return
	}

	if svc.IsAdmin(m.Author.ID) {
		_, err := s.ChannelMessageSend(m.ChannelID, "ℹ️ 管理员无需投稿，请使用 /approve 和 /reject 审核")
		if err != nil {
			log.Printf("提示管理员 %s 失败: %v", m.Author.ID, err)
		}
		return
	}

	result := svc.Submit(m.Message, time.Now())
	if result.Status == moderation.SubmitAccepted {
		log.Printf("收到用户 %s 的投稿，ID: %d", m.Author.ID, result.ID)
	}
}
