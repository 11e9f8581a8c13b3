package relay

import (
	"fmt"

	"relaybot/model"
	"relaybot/utils"

	"github.com/bwmarrin/discordgo"
)

// relayCaption 发布到目标频道时使用的固定说明，不显示投稿人
const relayCaption = "📨 来自社区投稿"

// DiscordNotifier 基于 discordgo 会话实现 moderation.Notifier
type DiscordNotifier struct {
	session         *discordgo.Session
	targetChannelID string
}

func NewDiscordNotifier(session *discordgo.Session, targetChannelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:         session,
		targetChannelID: targetChannelID,
	}
}

// SendUser delivers a plain text DM to a user.
func (n *DiscordNotifier) SendUser(userID, content string) error {
	channelID, err := utils.DMChannelFor(n.session, userID)
	if err != nil {
		return fmt.Errorf("resolving DM channel for %s: %w", userID, err)
	}
	_, err = n.session.ChannelMessageSend(channelID, content)
	return err
}

// NotifyAdmin DMs one admin the review notice for a pending post:
// header with the post ID and submitter, the forwarded content, and
// approve/reject buttons keyed by the ID.
func (n *DiscordNotifier) NotifyAdmin(adminID string, post *model.PendingPost) error {
	channelID, err := utils.DMChannelFor(n.session, adminID)
	if err != nil {
		return fmt.Errorf("resolving DM channel for admin %s: %w", adminID, err)
	}

	content := fmt.Sprintf("📮 新的投稿待审核 (ID: %d)\n投稿人: <@%s>", post.ID, post.SubmitterID)
	if post.Payload.Content != "" {
		content += "\n内容: " + post.Payload.Content
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "通过",
					Style:    discordgo.SuccessButton,
					CustomID: fmt.Sprintf("approve:%d", post.ID),
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
				discordgo.Button{
					Label:    "拒绝",
					Style:    discordgo.DangerButton,
					CustomID: fmt.Sprintf("reject:%d", post.ID),
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
			},
		},
	}

	_, err = n.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    content,
		Embeds:     imageEmbeds(post.Payload),
		Components: components,
	})
	return err
}

// Relay publishes an approved post to the target channel with the
// fixed caption and no attribution to the submitter.
func (n *DiscordNotifier) Relay(post *model.PendingPost) error {
	content := relayCaption
	if post.Payload.Content != "" {
		content += "\n" + post.Payload.Content
	}

	_, err := n.session.ChannelMessageSendComplex(n.targetChannelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  imageEmbeds(post.Payload),
	})
	return err
}

// imageEmbeds 把原始消息的附件转换成图片 embed
func imageEmbeds(msg *discordgo.Message) []*discordgo.MessageEmbed {
	var embeds []*discordgo.MessageEmbed
	for _, att := range msg.Attachments {
		embeds = append(embeds, &discordgo.MessageEmbed{
			Image: &discordgo.MessageEmbedImage{URL: att.URL},
		})
	}
	return embeds
}
