package model

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// PendingPost represents a submission awaiting review.
// Payload 保存原始消息，核心逻辑只在校验附件类型时检查它的内部结构。
type PendingPost struct {
	ID          int64
	SubmitterID string
	Payload     *discordgo.Message
	SubmittedAt time.Time
}
