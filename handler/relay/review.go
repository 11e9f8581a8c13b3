package relay

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"relaybot/moderation"

	"github.com/bwmarrin/discordgo"
)

// ApproveButtonHandler handles the 通过 button on a review notice.
func ApproveButtonHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	resolveButton(s, i, moderation.VerdictApproved)
}

// RejectButtonHandler handles the 拒绝 button on a review notice.
func RejectButtonHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	resolveButton(s, i, moderation.VerdictRejected)
}

// resolveButton 按钮入口，与斜杠命令走同一套 Approve/Reject 逻辑
func resolveButton(s *discordgo.Session, i *discordgo.InteractionCreate, verdict string) {
	customID := i.MessageComponentData().CustomID
	parts := strings.Split(customID, ":")
	if len(parts) < 2 {
		respondText(s, i, "❌ 数据格式错误，请改用 /approve 或 /reject 命令")
		return
	}

	postID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		respondText(s, i, "❌ 数据格式错误，请改用 /approve 或 /reject 命令")
		return
	}

	var result moderation.ResolveResult
	if verdict == moderation.VerdictApproved {
		result = svc.Approve(interactionUserID(i), postID)
	} else {
		result = svc.Reject(interactionUserID(i), postID)
	}

	if result.Status != moderation.ResolveOK {
		respondText(s, i, resolveMessage(result, verdict))
		return
	}

	// 审核完成后撤掉按钮，把通知改写成结果
	var line string
	if verdict == moderation.VerdictApproved {
		line = fmt.Sprintf("✅ 投稿 %d 已通过并发布", postID)
	} else {
		line = fmt.Sprintf("❌ 投稿 %d 已拒绝", postID)
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    line,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("更新审核通知失败 (投稿 %d): %v", postID, err)
	}
}
