package bot

import (
	"relaybot/handler"
	"relaybot/handler/relay"

	"github.com/bwmarrin/discordgo"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(relay.MessageCreate)

	// 设置必要的intents：私聊投稿需要 DirectMessages 和 MessageContent
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent
}
