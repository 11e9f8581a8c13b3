package main

import (
	"relaybot/bot"
)

func main() {
	bot.Start()
}
