package command

import (
	"relaybot/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.StartCommand,
	def.HelpCommand,
	def.ApproveCommand,
	def.RejectCommand,
}
