package moderation

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// acceptedImageTypes 允许投稿的文件 MIME 类型
var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// IsAcceptableImage reports whether the message carries media the bot
// accepts for submission: an image attachment Discord recognizes as
// such (image/* 类型且带像素尺寸，视频附件也带尺寸，不能只看尺寸)，
// 或声明的类型在白名单中。没有附件或类型不符的消息整体拒绝。
func IsAcceptableImage(msg *discordgo.Message) bool {
	if msg == nil {
		return false
	}
	for _, att := range msg.Attachments {
		if acceptedImageTypes[att.ContentType] {
			return true
		}
		if att.Width > 0 && att.Height > 0 && strings.HasPrefix(att.ContentType, "image/") {
			return true
		}
	}
	return false
}
