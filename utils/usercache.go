package utils

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

var (
	dmChannels = make(map[string]string)
	dmMutex    = &sync.RWMutex{}
)

// DMChannelFor returns the DM channel ID for a user, creating and
// memoizing it on first use. 条目不会失效，接受少量过期风险以省掉重复查询。
func DMChannelFor(s *discordgo.Session, userID string) (string, error) {
	dmMutex.RLock()
	channelID, found := dmChannels[userID]
	dmMutex.RUnlock()
	if found {
		return channelID, nil
	}

	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return "", err
	}

	dmMutex.Lock()
	dmChannels[userID] = channel.ID
	dmMutex.Unlock()
	return channel.ID, nil
}
