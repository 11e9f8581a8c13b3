package moderation

import (
	"fmt"
	"log"
	"slices"
	"time"

	"relaybot/model"

	"github.com/bwmarrin/discordgo"
)

// Notifier 是服务向外发送消息的唯一出口，由 Discord 适配层实现。
type Notifier interface {
	// SendUser delivers a plain text notice to a user.
	SendUser(userID, content string) error
	// NotifyAdmin delivers the review notice for a pending post to one
	// admin: header, forwarded content and approve/reject buttons.
	NotifyAdmin(adminID string, post *model.PendingPost) error
	// Relay publishes an approved post to the target channel without
	// attribution to the submitter.
	Relay(post *model.PendingPost) error
}

// Archiver records terminal decisions. 实现可以为空（不存档）。
type Archiver interface {
	RecordDecision(post *model.PendingPost, adminID, verdict string) error
}

// 存档使用的审核结论
const (
	VerdictApproved = "approved"
	VerdictRejected = "rejected"
	VerdictExpired  = "expired"
)

type SubmitStatus int

const (
	SubmitAccepted SubmitStatus = iota
	SubmitInvalidMedia
	SubmitOnCooldown
)

// SubmitResult describes the outcome of a submission attempt.
type SubmitResult struct {
	Status    SubmitStatus
	ID        int64
	Remaining time.Duration
}

type ResolveStatus int

const (
	ResolveOK ResolveStatus = iota
	ResolveNotAdmin
	ResolveNotFound
	ResolveRelayFailed
)

// ResolveResult describes the outcome of an approve/reject attempt.
// PendingIDs 仅在 ResolveNotFound 时填充，用于提示有效的投稿ID。
type ResolveResult struct {
	Status     ResolveStatus
	Post       *model.PendingPost
	PendingIDs []int64
}

// Service orchestrates the submission and review workflow. Commands
// and buttons are two entry points into the same Approve/Reject here.
type Service struct {
	registry *PendingRegistry
	cooldown *CooldownGate
	notifier Notifier
	archive  Archiver
	admins   []string
}

// NewService wires the workflow together. archive may be nil.
func NewService(registry *PendingRegistry, cooldown *CooldownGate, notifier Notifier, archive Archiver, admins []string) *Service {
	return &Service{
		registry: registry,
		cooldown: cooldown,
		notifier: notifier,
		archive:  archive,
		admins:   admins,
	}
}

// IsAdmin 检查用户是否在审核管理员白名单中
func (s *Service) IsAdmin(userID string) bool {
	return slices.Contains(s.admins, userID)
}

func (s *Service) Registry() *PendingRegistry {
	return s.registry
}

// Submit handles an inbound media message from a non-admin user:
// validate the media, pass the cooldown gate, register the post,
// acknowledge the submitter, then fan out to every admin.
func (s *Service) Submit(msg *discordgo.Message, now time.Time) SubmitResult {
	submitterID := msg.Author.ID

	if !IsAcceptableImage(msg) {
		s.send(submitterID, "🚫 只接受图片投稿（jpeg/png/gif/webp），请重新发送")
		return SubmitResult{Status: SubmitInvalidMedia}
	}

	ok, remaining := s.cooldown.CanSubmit(submitterID, now)
	if !ok {
		minutes := int(remaining.Minutes())
		s.send(submitterID, fmt.Sprintf("⏳ 请等待 %d 分钟后再提交新的投稿", minutes))
		return SubmitResult{Status: SubmitOnCooldown, Remaining: remaining}
	}

	post := s.registry.Insert(submitterID, msg, now)
	s.cooldown.Record(submitterID, now)

	s.send(submitterID, "✅ 您的投稿已收到，正在等待管理员审核")

	// 逐个通知管理员，单个失败不影响其他管理员和投稿本身
	for _, adminID := range s.admins {
		if err := s.notifier.NotifyAdmin(adminID, post); err != nil {
			log.Printf("通知管理员 %s 失败 (投稿 %d): %v", adminID, post.ID, err)
		}
	}

	return SubmitResult{Status: SubmitAccepted, ID: post.ID}
}

// Approve resolves a pending post as approved and relays it to the
// target channel. 发布失败时投稿会被放回待审核队列。
func (s *Service) Approve(adminID string, postID int64) ResolveResult {
	if !s.IsAdmin(adminID) {
		return ResolveResult{Status: ResolveNotAdmin}
	}

	post, ok := s.registry.Remove(postID)
	if !ok {
		return ResolveResult{Status: ResolveNotFound, PendingIDs: s.registry.PendingIDs()}
	}

	if err := s.notifier.Relay(post); err != nil {
		log.Printf("发布投稿 %d 到目标频道失败: %v", postID, err)
		s.registry.Restore(post)
		return ResolveResult{Status: ResolveRelayFailed, Post: post}
	}

	s.send(post.SubmitterID, "✅ 您的投稿已通过审核并发布！")
	s.archiveDecision(post, adminID, VerdictApproved)
	return ResolveResult{Status: ResolveOK, Post: post}
}

// Reject resolves a pending post as rejected. No relay is attempted.
func (s *Service) Reject(adminID string, postID int64) ResolveResult {
	if !s.IsAdmin(adminID) {
		return ResolveResult{Status: ResolveNotAdmin}
	}

	post, ok := s.registry.Remove(postID)
	if !ok {
		return ResolveResult{Status: ResolveNotFound, PendingIDs: s.registry.PendingIDs()}
	}

	s.send(post.SubmitterID, "❌ 您的投稿未通过审核")
	s.archiveDecision(post, adminID, VerdictRejected)
	return ResolveResult{Status: ResolveOK, Post: post}
}

// ExpireOlderThan removes every pending post submitted before the
// cutoff and notifies its submitter. Returns the number expired.
func (s *Service) ExpireOlderThan(cutoff time.Time) int {
	expired := 0
	for _, id := range s.registry.OlderThan(cutoff) {
		post, ok := s.registry.Remove(id)
		if !ok {
			continue
		}
		s.send(post.SubmitterID, "⌛ 您的投稿长时间未被处理，已自动失效，欢迎重新提交")
		s.archiveDecision(post, "", VerdictExpired)
		expired++
	}
	return expired
}

func (s *Service) send(userID, content string) {
	if err := s.notifier.SendUser(userID, content); err != nil {
		log.Printf("通知用户 %s 失败: %v", userID, err)
	}
}

func (s *Service) archiveDecision(post *model.PendingPost, adminID, verdict string) {
	if s.archive == nil {
		return
	}
	if err := s.archive.RecordDecision(post, adminID, verdict); err != nil {
		log.Printf("存档投稿 %d 审核结果失败: %v", post.ID, err)
	}
}
