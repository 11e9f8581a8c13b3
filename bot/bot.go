package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relaybot/command"
	"relaybot/config"
	"relaybot/db"
	"relaybot/handler/relay"
	"relaybot/moderation"

	"github.com/bwmarrin/discordgo"
)

var dg *discordgo.Session

// Start 启动机器人
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置文件时出错: %v", err)
		return
	}

	if config.Cfg.Token == "" {
		log.Printf("Warning: Token is empty!")
	}

	// 审核结果存档是可选的
	var archive moderation.Archiver
	if config.Cfg.Relay.ArchivePath != "" {
		db.InitDB(config.Cfg.Relay.ArchivePath)
		archive = db.DecisionArchive{}
	}

	// 使用提供的机器人令牌创建一个新的 Discord 会话
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("创建 Discord 会话时出错, %v", err)
		return
	}

	notifier := relay.NewDiscordNotifier(dg, config.Cfg.Relay.TargetChannelID)
	svc := moderation.NewService(
		moderation.NewPendingRegistry(),
		moderation.NewCooldownGate(time.Duration(config.Cfg.Relay.CooldownMinutes)*time.Minute),
		notifier,
		archive,
		config.Cfg.Relay.AdminIDs,
	)
	relay.RegisterHandlers(svc)

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Printf("error opening connection, %v", err)
		return
	}

	// 全局注册命令，机器人主要在私聊中使用
	for _, cmd := range command.AllCommands {
		_, err := dg.ApplicationCommandCreate(dg.State.User.ID, "", cmd)
		if err != nil {
			log.Fatalf("Cannot create '%v' command: %v", cmd.Name, err)
		}
	}

	sweeper := moderation.NewSweeper(svc, time.Duration(config.Cfg.Relay.PostTimeoutHours)*time.Hour)
	sweeper.Start()

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	sweeper.Stop()
	dg.Close()
}

// GetSession 返回当前的 Discord 会话
func GetSession() *discordgo.Session {
	return dg
}
